package model

// TokenUser : идентичность, зашитая внутрь access и refresh токенов.
// Единственный источник данных для авторизации downstream-слоёв.
type TokenUser struct {
	Email   string `json:"email"`
	UserUID string `json:"user_uid"`
	Role    string `json:"role"`
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// Refresh токен (для получения нового access токена)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refresh_token"`
}
