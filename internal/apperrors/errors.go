package apperrors

import "errors"

// Доменные ошибки сервиса. Сервисы возвращают их (обёрнутыми через %w)
// в месте обнаружения, а транспортный слой переводит в HTTP статусы.
var (
	ErrUserAlreadyExists  = errors.New("user_already_exists")
	ErrUserNotFound       = errors.New("user_not_found")
	ErrInvalidCredentials = errors.New("invalid_credentials")

	ErrMissingCredential = errors.New("missing_or_malformed_credential")

	// Невалидная подпись, истёкший срок и отозванный jti намеренно
	// неразличимы для клиента
	ErrInvalidToken             = errors.New("invalid_or_expired_token")
	ErrAccessTokenRequired      = errors.New("access_token_required")
	ErrRefreshTokenRequired     = errors.New("refresh_token_required")
	ErrInvalidVerificationToken = errors.New("invalid_verification_token")

	ErrAccountNotVerified     = errors.New("account_not_verified")
	ErrInsufficientPermission = errors.New("insufficient_permission")

	ErrResetPasswordsDoNotMatch = errors.New("reset_passwords_do_not_match")

	ErrBookNotFound     = errors.New("book_not_found")
	ErrReviewNotFound   = errors.New("review_not_found")
	ErrTagNotFound      = errors.New("tag_not_found")
	ErrTagAlreadyExists = errors.New("tag_already_exists")
)
