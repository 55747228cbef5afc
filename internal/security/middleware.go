package security

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"quillist/internal/apperrors"
	"quillist/internal/model"
	"quillist/internal/util"
)

type contextKey string

const (
	ClaimsContextKey contextKey = "claims"
	UserContextKey   contextKey = "current_user"
)

// BlocklistChecker : проверка jti по блоклисту отозванных токенов
type BlocklistChecker interface {
	Contains(ctx context.Context, jti string) (bool, error)
}

// UserProvider : поиск полной записи пользователя для авторизационных проверок
type UserProvider interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// JWTMiddleware проверяет bearer токен из Authorization заголовка:
// подпись и срок, блоклист по jti, соответствие виду kind.
// Отозванный токен для клиента неотличим от невалидного
func JWTMiddleware(kind TokenKind, jwtService *JWTService, blocklist BlocklistChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(kind, jwtService, blocklist, next))
	}
}

func handleAuthentication(kind TokenKind, jwtService *JWTService, blocklist BlocklistChecker, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		authorizationHeader := request.Header.Get("Authorization")
		if !strings.HasPrefix(authorizationHeader, "Bearer ") {
			util.HandleError(writer, "пустой или неверный заголовок Authorization", apperrors.ErrMissingCredential.Error(), http.StatusUnauthorized)
			return
		}

		token := strings.TrimPrefix(authorizationHeader, "Bearer ")

		claims, err := jwtService.ParseToken(token)
		if err != nil {
			log.Printf("невалидный токен: %v", err)
			util.HandleError(writer, "невалидный или истёкший токен", apperrors.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		revoked, err := blocklist.Contains(request.Context(), claims.ID)
		if err != nil {
			log.Printf("ошибка проверки блоклиста: %v", err)
			util.HandleError(writer, "внутренняя ошибка сервера", "internal_error", http.StatusInternalServerError)
			return
		}
		if revoked {
			util.HandleError(writer, "невалидный или истёкший токен", apperrors.ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		if kind == AccessToken && claims.Refresh {
			util.HandleError(writer, "требуется access токен", apperrors.ErrAccessTokenRequired.Error(), http.StatusUnauthorized)
			return
		}
		if kind == RefreshToken && !claims.Refresh {
			util.HandleError(writer, "требуется refresh токен", apperrors.ErrRefreshTokenRequired.Error(), http.StatusUnauthorized)
			return
		}

		req := request.WithContext(context.WithValue(request.Context(), ClaimsContextKey, claims))
		next.ServeHTTP(writer, req)
	}
}

// RoleMiddleware запускается после JWTMiddleware: находит полную запись
// пользователя и проверяет статус верификации и роль.
// Порядок важен: неподтверждённый админ тоже получает отказ
func RoleMiddleware(users UserProvider, allowedRoles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, err := GetClaimsFromContext(request.Context())
			if err != nil {
				util.HandleError(writer, "не авторизован", apperrors.ErrMissingCredential.Error(), http.StatusUnauthorized)
				return
			}

			user, err := users.FindByEmail(request.Context(), claims.User.Email)
			if err != nil {
				if errors.Is(err, apperrors.ErrUserNotFound) {
					util.HandleError(writer, "пользователь не найден", apperrors.ErrUserNotFound.Error(), http.StatusNotFound)
					return
				}
				log.Printf("ошибка поиска пользователя: %v", err)
				util.HandleError(writer, "внутренняя ошибка сервера", "internal_error", http.StatusInternalServerError)
				return
			}

			if !user.IsVerified {
				util.HandleError(writer, "аккаунт не подтверждён", apperrors.ErrAccountNotVerified.Error(), http.StatusForbidden)
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if user.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				util.HandleError(writer, "недостаточно прав", apperrors.ErrInsufficientPermission.Error(), http.StatusForbidden)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, user))
			next.ServeHTTP(writer, req)
		})
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}

func GetCurrentUserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return user, nil
}
