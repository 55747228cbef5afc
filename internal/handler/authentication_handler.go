package handler

import (
	"net/http"

	"quillist/internal/model/requestresponse"
	"quillist/internal/ports"
	"quillist/internal/security"
	"quillist/internal/util"

	"github.com/go-chi/chi/v5"
)

type AuthenticationHandler struct {
	authService ports.AuthenticationService
}

func NewAuthenticationHandler(authService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authService}
}

// Signup godoc
// @Summary Регистрация аккаунта
// @Description Создает неподтверждённый аккаунт и отправляет письмо со ссылкой подтверждения
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.SignupRequest true "Тело запроса"
// @Success 201 {object} requestresponse.SignupResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или валидация"
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже занят"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/v1/auth/signup [post]
func (h *AuthenticationHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, requestresponse.SignupResponse{
		Message: "Аккаунт создан! Проверьте почту для подтверждения.",
		User:    user,
	})
}

// Verify godoc
// @Summary Подтверждение аккаунта
// @Description Подтверждает аккаунт по токену из письма
// @Tags Authentication
// @Produce json
// @Param token path string true "Токен подтверждения"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Невалидный или истёкший токен"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Router /api/v1/auth/verify/{token} [get]
func (h *AuthenticationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	if err := h.authService.Verify(r.Context(), token); err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{
		Message: "Аккаунт подтверждён! Теперь можно войти.",
	})
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выдает пару access и refresh токенов по email и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный пароль"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Router /api/v1/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	tokens, user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.LoginResponse{
		Message:      "Вход выполнен",
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User: requestresponse.UserSummary{
			UID:       user.UID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}

// RefreshToken godoc
// @Summary Обновление access токена
// @Description Выпускает новый access токен по действующему refresh токену
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer refresh токен"
// @Success 200 {object} requestresponse.RefreshTokenResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/auth/refresh-token [get]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", "missing_or_malformed_credential", http.StatusUnauthorized)
		return
	}

	accessToken, err := h.authService.RefreshToken(r.Context(), claims)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.RefreshTokenResponse{
		AccessToken: accessToken,
	})
}

// Me godoc
// @Summary Текущий пользователь
// @Description Возвращает профиль авторизованного пользователя (без хэша пароля)
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer access токен"
// @Success 200 {object} model.User
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/auth/me [get]
func (h *AuthenticationHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetCurrentUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", "missing_or_malformed_credential", http.StatusUnauthorized)
		return
	}

	sendJSON(w, http.StatusOK, user)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Кладет jti текущего access токена в блоклист до его естественного истечения
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer access токен"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/auth/logout [get]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", "missing_or_malformed_credential", http.StatusUnauthorized)
		return
	}

	if err := h.authService.Logout(r.Context(), claims); err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{
		Message: "Выход выполнен",
	})
}

// PasswordResetRequest godoc
// @Summary Запрос сброса пароля
// @Description Отправляет письмо со ссылкой сброса. Всегда отвечает успехом, существование email не раскрывается
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.PasswordResetRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/auth/password-reset-request [post]
func (h *AuthenticationHandler) PasswordResetRequest(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.PasswordResetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{
		Message: "Ссылка для сброса пароля отправлена! Проверьте почту.",
	})
}

// PasswordResetConfirm godoc
// @Summary Подтверждение сброса пароля
// @Description Устанавливает новый пароль по токену из письма
// @Tags Authentication
// @Accept json
// @Produce json
// @Param token path string true "Токен сброса"
// @Param body body requestresponse.PasswordResetConfirmRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Пароли не совпадают"
// @Failure 401 {object} requestresponse.ErrorResponse "Невалидный или истёкший токен"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Router /api/v1/auth/password-reset-confirm/{token} [post]
func (h *AuthenticationHandler) PasswordResetConfirm(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var req requestresponse.PasswordResetConfirmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.authService.ConfirmPasswordReset(r.Context(), token, req.NewPassword, req.ConfirmNewPassword); err != nil {
		handleServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{
		Message: "Пароль сброшен! Теперь можно войти.",
	})
}

// SendMail godoc
// @Summary Приветственное письмо
// @Description Отправляет приветственное письмо на переданные адреса
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.SendMailRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Router /api/v1/auth/send-mail [post]
func (h *AuthenticationHandler) SendMail(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SendMailRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	h.authService.SendWelcomeMail(req.Addresses)

	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{
		Message: "Письмо отправлено",
	})
}
