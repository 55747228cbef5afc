package requestresponse

import "quillist/internal/model"

// SignupRequest : тело запроса на регистрацию аккаунта
type SignupRequest struct {
	Username  string `json:"username" validate:"required,max=12" example:"booklover"`
	Email     string `json:"email" validate:"required,email,max=50" example:"user@example.com"`
	Password  string `json:"password" validate:"required,min=6" example:"P@ssw0rd123"`
	FirstName string `json:"first_name" validate:"required,max=25" example:"Ivan"`
	LastName  string `json:"last_name" validate:"required,max=25" example:"Petrov"`
}

// SignupResponse : ответ на успешную регистрацию
type SignupResponse struct {
	Message string      `json:"message" example:"Аккаунт создан! Проверьте почту для подтверждения."`
	User    *model.User `json:"user"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=50" example:"user@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"P@ssw0rd123"`
}

// UserSummary : публичная часть профиля, отдается при логине
// (никогда не содержит хэш пароля)
type UserSummary struct {
	UID       string `json:"uid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Email     string `json:"email" example:"user@example.com"`
	FirstName string `json:"first_name" example:"Ivan"`
	LastName  string `json:"last_name" example:"Petrov"`
}

// LoginResponse : ответ на успешную аутентификацию
type LoginResponse struct {
	Message      string      `json:"message" example:"Вход выполнен"`
	AccessToken  string      `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string      `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User         UserSummary `json:"user"`
}

// RefreshTokenResponse : новый access токен
type RefreshTokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// PasswordResetRequest : запрос ссылки на сброс пароля
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email" example:"user@example.com"`
}

// PasswordResetConfirmRequest : подтверждение сброса пароля
type PasswordResetConfirmRequest struct {
	NewPassword        string `json:"new_password" validate:"required,min=6"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required,min=6"`
}

// SendMailRequest : адреса для приветственного письма
type SendMailRequest struct {
	Addresses []string `json:"addresses" validate:"required,min=1,dive,email"`
}

// MessageResponse : универсальный ответ с сообщением
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// ErrorResponse : тело ответа при ошибке
type ErrorResponse struct {
	Error   string `json:"error" example:"Unauthorized"`
	Message string `json:"message" example:"невалидный токен"`
	Code    string `json:"code" example:"invalid_or_expired_token"`
}
