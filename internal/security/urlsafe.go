package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"time"

	"quillist/internal/apperrors"
	"quillist/internal/util"

	"github.com/golang-jwt/jwt/v5"
)

// Opaque токены для писем (подтверждение аккаунта, сброс пароля).
// Подписываются ключом, производным от секрета и соли, поэтому не
// взаимозаменяемы с access/refresh токенами даже при одинаковой кодировке.
// Срока действия в самом токене нет: валидность определяется на декоде
// по прошедшему времени от iat против настроенного max_age

type urlSafeClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func deriveOpaqueKey(secret string, salt string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(salt))
	return mac.Sum(nil)
}

// CreateURLSafeToken выпускает подписанный токен с email внутри
func (service *JWTService) CreateURLSafeToken(email string) (string, error) {
	claims := urlSafeClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(service.opaqueKey)
	if err != nil {
		return "", util.LogError("ошибка подписи opaque токена", err)
	}
	return tokenStr, nil
}

// ParseURLSafeToken возвращает email из токена.
// Отказывает при подделке и когда от выпуска прошло больше max_age
func (service *JWTService) ParseURLSafeToken(tokenStr string) (string, error) {
	var claims = &urlSafeClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return service.opaqueKey, nil
	})

	if err != nil || !token.Valid {
		return "", apperrors.ErrInvalidVerificationToken
	}

	if claims.IssuedAt == nil || time.Since(claims.IssuedAt.Time) > service.opaqueMaxAge {
		return "", apperrors.ErrInvalidVerificationToken
	}
	if claims.Email == "" {
		return "", apperrors.ErrInvalidVerificationToken
	}

	return claims.Email, nil
}
