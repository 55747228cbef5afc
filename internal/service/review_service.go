package service

import (
	"context"
	"fmt"

	"quillist/internal/apperrors"
	"quillist/internal/model"
	"quillist/internal/ports"

	"github.com/google/uuid"
)

type ReviewService struct {
	reviewRepository ports.ReviewRepository
	bookRepository   ports.BookRepository
}

func NewReviewService(reviewRepository ports.ReviewRepository, bookRepository ports.BookRepository) *ReviewService {
	return &ReviewService{
		reviewRepository: reviewRepository,
		bookRepository:   bookRepository,
	}
}

// AddReview : отзыв привязывается к существующей книге и автору
func (s *ReviewService) AddReview(ctx context.Context, bookUID string, author *model.User, rating int, text string) (*model.Review, error) {
	if _, err := s.bookRepository.GetByUID(ctx, bookUID); err != nil {
		return nil, err
	}

	review := &model.Review{
		UID:        uuid.New().String(),
		Rating:     rating,
		ReviewText: text,
		UserUID:    author.UID,
		BookUID:    bookUID,
	}

	created, err := s.reviewRepository.Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания отзыва: %w", err)
	}
	return created, nil
}

func (s *ReviewService) GetReview(ctx context.Context, uid string) (*model.Review, error) {
	return s.reviewRepository.GetByUID(ctx, uid)
}

func (s *ReviewService) ListBookReviews(ctx context.Context, bookUID string) ([]model.Review, error) {
	if _, err := s.bookRepository.GetByUID(ctx, bookUID); err != nil {
		return nil, err
	}
	return s.reviewRepository.ListByBook(ctx, bookUID)
}

// DeleteReview : автор отзыва или админ
func (s *ReviewService) DeleteReview(ctx context.Context, uid string, actor *model.User) error {
	review, err := s.reviewRepository.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if review.UserUID != actor.UID && actor.Role != model.RoleAdmin {
		return apperrors.ErrInsufficientPermission
	}

	return s.reviewRepository.Delete(ctx, uid)
}
