package ports

import (
	"context"

	"quillist/internal/model"
	"quillist/internal/model/requestresponse"
	"quillist/internal/security"
)

type AuthenticationService interface {
	Signup(ctx context.Context, req *requestresponse.SignupRequest) (*model.User, error)
	Verify(ctx context.Context, token string) error
	Login(ctx context.Context, email string, password string) (*model.TokensPair, *model.User, error)
	RefreshToken(ctx context.Context, claims *security.Claims) (string, error)
	Logout(ctx context.Context, claims *security.Claims) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token string, newPassword string, confirmNewPassword string) error
	SendWelcomeMail(addresses []string)
}
