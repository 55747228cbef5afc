package repository

import (
	"context"
	"database/sql"
	"errors"

	"quillist/config"
	"quillist/internal/apperrors"
	"quillist/internal/model"
	"quillist/internal/util"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (uid, username, email, first_name, last_name, role, is_verified, password_hash)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING uid, username, email, first_name, last_name, role, is_verified, password_hash, created_at, updated_at
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query,
		user.UID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.Role,
		user.IsVerified,
		user.PasswordHash,
	).StructScan(createdUser)

	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByEmail : ищет пользователя по email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
	SELECT uid, username, email, first_name, last_name, role, is_verified, password_hash, created_at, updated_at
	FROM users WHERE email = $1`

	var user model.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// FindByUID : ищет пользователя по UID
func (r *UserRepository) FindByUID(ctx context.Context, uid string) (*model.User, error) {
	query := `
	SELECT uid, username, email, first_name, last_name, role, is_verified, password_hash, created_at, updated_at
	FROM users WHERE uid = $1`

	var user model.User
	err := r.DB.GetContext(ctx, &user, query, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// Exists : проверяет, существует ли пользователь с таким email
func (r *UserRepository) Exists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	err := r.DB.GetContext(ctx, &exists, query, email)
	if err != nil {
		return false, util.LogError("[UserRepo] ошибка проверки существования пользователя", err)
	}
	return exists, nil
}

// SetVerified : помечает аккаунт подтверждённым
func (r *UserRepository) SetVerified(ctx context.Context, uid string) error {
	query := `UPDATE users SET is_verified = true, updated_at = now() WHERE uid = $1`
	_, err := r.DB.ExecContext(ctx, query, uid)
	if err != nil {
		return util.LogError("[UserRepo] не удалось подтвердить аккаунт", err)
	}
	return nil
}

// UpdatePassword : заменяет хэш пароля пользователя
func (r *UserRepository) UpdatePassword(ctx context.Context, uid string, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE uid = $1`
	_, err := r.DB.ExecContext(ctx, query, uid, newPasswordHash)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить пароль", err)
	}
	return nil
}
