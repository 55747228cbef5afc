package service

import (
	"context"
	"fmt"
	"time"

	"quillist/internal/apperrors"
	"quillist/internal/mail"
	"quillist/internal/model"
	"quillist/internal/model/requestresponse"
	"quillist/internal/ports"
	"quillist/internal/security"
	"quillist/internal/util"

	"github.com/google/uuid"
)

// AuthenticationService связывает аккаунтные флоу: регистрация с письмом
// подтверждения, логин с выдачей пары токенов, refresh, logout через
// блоклист и сброс пароля по ссылке из письма
type AuthenticationService struct {
	userRepository ports.UserRepository
	jwtService     ports.JWTServiceInterface
	blocklist      ports.BlocklistRepository
	mailer         ports.MailEnqueuer
	apiURL         string
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	jwtService ports.JWTServiceInterface,
	blocklist ports.BlocklistRepository,
	mailer ports.MailEnqueuer,
	apiURL string,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository: userRepository,
		jwtService:     jwtService,
		blocklist:      blocklist,
		mailer:         mailer,
		apiURL:         apiURL,
	}
}

// Signup создает неподтверждённый аккаунт и ставит в очередь письмо
// со ссылкой подтверждения
func (s *AuthenticationService) Signup(ctx context.Context, req *requestresponse.SignupRequest) (*model.User, error) {
	exists, err := s.userRepository.Exists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки существования пользователя: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать хэш пароля: %w", err)
	}

	user := &model.User{
		UID:          uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         model.RoleUser,
		IsVerified:   false,
		PasswordHash: hash,
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания пользователя: %w", err)
	}

	verificationToken, err := s.jwtService.CreateURLSafeToken(created.Email)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации токена подтверждения: %w", err)
	}

	link := fmt.Sprintf("%s/api/v1/auth/verify/%s", s.apiURL, verificationToken)
	subject, body := mail.VerificationMessage(created.FirstName, link)
	s.mailer.Enqueue([]string{created.Email}, subject, body)

	return created, nil
}

// Verify подтверждает аккаунт по токену из письма.
// Повторное подтверждение безвредно, мусорный токен не меняет ничего
func (s *AuthenticationService) Verify(ctx context.Context, token string) error {
	email, err := s.jwtService.ParseURLSafeToken(token)
	if err != nil {
		return apperrors.ErrInvalidVerificationToken
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.userRepository.SetVerified(ctx, user.UID); err != nil {
		return fmt.Errorf("не удалось подтвердить аккаунт: %w", err)
	}
	return nil
}

// Login выдает access и refresh токены с одинаковыми claims,
// refresh живет дольше и помечен флагом
func (s *AuthenticationService) Login(ctx context.Context, email string, password string) (*model.TokensPair, *model.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.jwtService.CreateTokensPair(model.TokenUser{
		Email:   user.Email,
		UserUID: user.UID,
		Role:    user.Role,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка генерации токенов: %w", err)
	}

	return tokens, user, nil
}

// RefreshToken выпускает новый access токен по claims refresh токена.
// Срок перепроверяется поверх проверки кодека
func (s *AuthenticationService) RefreshToken(ctx context.Context, claims *security.Claims) (string, error) {
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return "", apperrors.ErrInvalidToken
	}

	accessToken, err := s.jwtService.CreateToken(claims.User, s.jwtService.AccessTokenTTL(), false)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации токена: %w", err)
	}
	return accessToken, nil
}

// Logout кладет jti access токена в блоклист.
// TTL записи равен сроку жизни access токена: дольше держать нет смысла,
// по его истечении токен отбросит сам кодек
func (s *AuthenticationService) Logout(ctx context.Context, claims *security.Claims) error {
	if err := s.blocklist.Add(ctx, claims.ID, s.jwtService.AccessTokenTTL()); err != nil {
		return util.LogError("не удалось отозвать токен", err)
	}
	return nil
}

// RequestPasswordReset всегда отвечает успехом и всегда шлет письмо,
// чтобы по ответу нельзя было перебирать зарегистрированные адреса
func (s *AuthenticationService) RequestPasswordReset(ctx context.Context, email string) error {
	resetToken, err := s.jwtService.CreateURLSafeToken(email)
	if err != nil {
		return fmt.Errorf("ошибка генерации токена сброса: %w", err)
	}

	link := fmt.Sprintf("%s/api/v1/auth/password-reset-confirm/%s", s.apiURL, resetToken)
	subject, body := mail.PasswordResetMessage(link)
	s.mailer.Enqueue([]string{email}, subject, body)

	return nil
}

// ConfirmPasswordReset проверяет совпадение паролей до разбора токена
func (s *AuthenticationService) ConfirmPasswordReset(ctx context.Context, token string, newPassword string, confirmNewPassword string) error {
	if newPassword != confirmNewPassword {
		return apperrors.ErrResetPasswordsDoNotMatch
	}

	email, err := s.jwtService.ParseURLSafeToken(token)
	if err != nil {
		return apperrors.ErrInvalidVerificationToken
	}

	user, err := s.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("не удалось создать хэш пароля: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, user.UID, hash); err != nil {
		return fmt.Errorf("не удалось обновить пароль: %w", err)
	}
	return nil
}

func (s *AuthenticationService) SendWelcomeMail(addresses []string) {
	subject, body := mail.WelcomeMessage()
	s.mailer.Enqueue(addresses, subject, body)
}
