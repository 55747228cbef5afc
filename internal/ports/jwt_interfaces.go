package ports

import (
	"context"
	"time"

	"quillist/internal/model"
	"quillist/internal/security"
)

type JWTServiceInterface interface {
	CreateToken(user model.TokenUser, expiry time.Duration, refresh bool) (string, error)
	CreateTokensPair(user model.TokenUser) (*model.TokensPair, error)
	ParseToken(tokenStr string) (*security.Claims, error)
	CreateURLSafeToken(email string) (string, error)
	ParseURLSafeToken(tokenStr string) (string, error)
	AccessTokenTTL() time.Duration
}

// BlocklistRepository : хранилище отозванных jti с самоистекающими записями
type BlocklistRepository interface {
	Add(ctx context.Context, jti string, ttl time.Duration) error
	Contains(ctx context.Context, jti string) (bool, error)
}
