package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"

	"quillist/internal/apperrors"
	"quillist/internal/util"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// в сообщениях об ошибках поля называются как в JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON разбирает и валидирует тело запроса.
// При ошибке сам пишет 400 и возвращает err, чтобы хендлер вышел
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		util.HandleError(w, "некорректный JSON", "bad_request", http.StatusBadRequest)
		return err
	}
	if err := validate.Struct(dst); err != nil {
		util.HandleError(w, err.Error(), "validation_failed", http.StatusBadRequest)
		return err
	}
	return nil
}

func sendJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("ошибка кодирования ответа:", err)
	}
}

// handleServiceError переводит доменную ошибку в HTTP статус.
// Единственное место, где ядро встречается с транспортом
func handleServiceError(w http.ResponseWriter, err error) {
	log.Println(err)
	switch {
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		util.HandleError(w, "пользователь с таким email уже существует", apperrors.ErrUserAlreadyExists.Error(), http.StatusConflict)
	case errors.Is(err, apperrors.ErrTagAlreadyExists):
		util.HandleError(w, "тег с таким именем уже существует", apperrors.ErrTagAlreadyExists.Error(), http.StatusConflict)
	case errors.Is(err, apperrors.ErrUserNotFound):
		util.HandleError(w, "пользователь не найден", apperrors.ErrUserNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrBookNotFound):
		util.HandleError(w, "книга не найдена", apperrors.ErrBookNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrReviewNotFound):
		util.HandleError(w, "отзыв не найден", apperrors.ErrReviewNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrTagNotFound):
		util.HandleError(w, "тег не найден", apperrors.ErrTagNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		util.HandleError(w, "неверный email или пароль", apperrors.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrInvalidToken):
		util.HandleError(w, "невалидный или истёкший токен", apperrors.ErrInvalidToken.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrInvalidVerificationToken):
		util.HandleError(w, "невалидный или истёкший токен подтверждения", apperrors.ErrInvalidVerificationToken.Error(), http.StatusUnauthorized)
	case errors.Is(err, apperrors.ErrAccountNotVerified):
		util.HandleError(w, "аккаунт не подтверждён", apperrors.ErrAccountNotVerified.Error(), http.StatusForbidden)
	case errors.Is(err, apperrors.ErrInsufficientPermission):
		util.HandleError(w, "недостаточно прав", apperrors.ErrInsufficientPermission.Error(), http.StatusForbidden)
	case errors.Is(err, apperrors.ErrResetPasswordsDoNotMatch):
		util.HandleError(w, "пароли не совпадают", apperrors.ErrResetPasswordsDoNotMatch.Error(), http.StatusBadRequest)
	default:
		util.HandleError(w, "внутренняя ошибка сервера", "internal_error", http.StatusInternalServerError)
	}
}
