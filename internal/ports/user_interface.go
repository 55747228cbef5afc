package ports

import (
	"context"

	"quillist/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	Exists(ctx context.Context, email string) (bool, error)
	SetVerified(ctx context.Context, uid string) error
	UpdatePassword(ctx context.Context, uid string, newPasswordHash string) error
}
