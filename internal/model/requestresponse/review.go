package requestresponse

// ReviewCreateRequest : тело запроса на добавление отзыва к книге
type ReviewCreateRequest struct {
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5" example:"5"`
	ReviewText string `json:"review_text" validate:"required" example:"Отличная книга"`
}
