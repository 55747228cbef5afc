package requestresponse

// BookCreateRequest : тело запроса на добавление книги
type BookCreateRequest struct {
	Title         string `json:"title" validate:"required" example:"Мастер и Маргарита"`
	Author        string `json:"author" validate:"required" example:"Михаил Булгаков"`
	Publisher     string `json:"publisher" validate:"required" example:"АСТ"`
	PublishedDate string `json:"published_date" validate:"required,datetime=2006-01-02" example:"1967-01-13"`
	PageCount     int    `json:"page_count" validate:"required,gt=0" example:"480"`
	Language      string `json:"language" validate:"required" example:"ru"`
}

// BookUpdateRequest : тело запроса на обновление книги
type BookUpdateRequest struct {
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	Publisher string `json:"publisher" validate:"required"`
	PageCount int    `json:"page_count" validate:"required,gt=0"`
	Language  string `json:"language" validate:"required"`
}

// CoverUploadResponse : presigned ссылка для загрузки обложки
type CoverUploadResponse struct {
	UploadURL string `json:"upload_url"`
}

// CoverURLResponse : presigned ссылка для скачивания обложки
type CoverURLResponse struct {
	CoverURL string `json:"cover_url"`
}
