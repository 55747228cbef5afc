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

type ReviewRepository struct {
	*config.Database
}

func NewReviewRepository(database *config.Database) *ReviewRepository {
	return &ReviewRepository{database}
}

const reviewColumns = `uid, rating, review_text, user_uid, book_uid, created_at, updated_at`

// Create : сохраняет отзыв к книге
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	query := `
	INSERT INTO reviews (uid, rating, review_text, user_uid, book_uid)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + reviewColumns

	created := &model.Review{}
	err := r.DB.QueryRowxContext(ctx, query,
		review.UID,
		review.Rating,
		review.ReviewText,
		review.UserUID,
		review.BookUID,
	).StructScan(created)

	if err != nil {
		return nil, util.LogError("[ReviewRepo] ошибка вставки данных в БД", err)
	}
	return created, nil
}

// GetByUID : ищет отзыв по UID
func (r *ReviewRepository) GetByUID(ctx context.Context, uid string) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE uid = $1`

	var review model.Review
	err := r.DB.GetContext(ctx, &review, query, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrReviewNotFound
	}
	if err != nil {
		return nil, util.LogError("[ReviewRepo] не удалось найти отзыв в БД", err)
	}
	return &review, nil
}

// ListByBook : отзывы на книгу, сначала новые
func (r *ReviewRepository) ListByBook(ctx context.Context, bookUID string) ([]model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE book_uid = $1 ORDER BY created_at DESC`

	var reviews []model.Review
	if err := r.DB.SelectContext(ctx, &reviews, query, bookUID); err != nil {
		return nil, util.LogError("[ReviewRepo] не удалось получить отзывы на книгу", err)
	}
	return reviews, nil
}

// Delete : удаляет отзыв по UID
func (r *ReviewRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE uid = $1`, uid)
	if err != nil {
		return util.LogError("[ReviewRepo] не удалось удалить отзыв", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}
