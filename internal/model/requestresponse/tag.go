package requestresponse

// TagCreateRequest : тело запроса на создание или переименование тега
type TagCreateRequest struct {
	Name string `json:"name" validate:"required" example:"фантастика"`
}

// AddTagsRequest : набор тегов для привязки к книге
type AddTagsRequest struct {
	Tags []TagCreateRequest `json:"tags" validate:"required,min=1,dive"`
}
