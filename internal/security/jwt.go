package security

import (
	"fmt"
	"time"

	"quillist/config"
	"quillist/internal/apperrors"
	"quillist/internal/model"
	"quillist/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenKind задает требование к виду токена в Authorization заголовке.
// Access и refresh токены проходят один и тот же конвейер проверки,
// различается только предикат на флаг refresh
type TokenKind int

const (
	AccessToken TokenKind = iota
	RefreshToken
)

type Claims struct {
	User    model.TokenUser `json:"user"`
	Refresh bool            `json:"refresh"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secretKey     []byte
	signingMethod jwt.SigningMethod
	accessTTL     time.Duration
	refreshTTL    time.Duration
	opaqueKey     []byte
	opaqueMaxAge  time.Duration
}

func NewJWTService(cfg *config.JWTConfig, opaqueCfg *config.OpaqueTokenConfig) (*JWTService, error) {
	alg := cfg.Algorithm
	if alg == "" {
		alg = "HS256"
	}
	method := jwt.GetSigningMethod(alg)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("неподдерживаемый способ подписи токена: %s", alg)
	}

	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга access_token_ttl", err)
	}
	refreshTTL, err := time.ParseDuration(cfg.RefreshTokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга refresh_token_ttl", err)
	}
	opaqueMaxAge, err := time.ParseDuration(opaqueCfg.MaxAge)
	if err != nil {
		return nil, util.LogError("ошибка парсинга opaque max_age", err)
	}

	return &JWTService{
		secretKey:     []byte(cfg.SecretKey),
		signingMethod: method,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		opaqueKey:     deriveOpaqueKey(cfg.SecretKey, opaqueCfg.Salt),
		opaqueMaxAge:  opaqueMaxAge,
	}, nil
}

func (service *JWTService) AccessTokenTTL() time.Duration {
	return service.accessTTL
}

// CreateToken выпускает подписанный токен с идентичностью пользователя,
// абсолютным сроком действия, свежим jti и флагом refresh.
// Ничего не сохраняет: токен существует только как строка у клиента
func (service *JWTService) CreateToken(user model.TokenUser, expiry time.Duration, refresh bool) (string, error) {
	now := time.Now()
	claims := Claims{
		User:    user,
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
			Issuer:    "quillist",
		},
	}

	jwtToken := jwt.NewWithClaims(service.signingMethod, claims)
	tokenStr, err := jwtToken.SignedString(service.secretKey)
	if err != nil {
		return "", util.LogError("ошибка подписи токена", err)
	}
	return tokenStr, nil
}

// CreateTokensPair выпускает access токен и refresh токен
// с одинаковыми claims, различаются только срок и флаг refresh
func (service *JWTService) CreateTokensPair(user model.TokenUser) (*model.TokensPair, error) {
	accessToken, err := service.CreateToken(user, service.accessTTL, false)
	if err != nil {
		return nil, err
	}

	refreshToken, err := service.CreateToken(user, service.refreshTTL, true)
	if err != nil {
		return nil, err
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ParseToken проверяет подпись и срок действия.
// Любая причина отказа сворачивается в apperrors.ErrInvalidToken:
// клиент не должен отличать истёкший токен от подделанного
func (service *JWTService) ParseToken(tokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != service.signingMethod.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return service.secretKey, nil
	})

	if err != nil || !jwtToken.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
