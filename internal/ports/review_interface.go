package ports

import (
	"context"

	"quillist/internal/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	GetByUID(ctx context.Context, uid string) (*model.Review, error)
	ListByBook(ctx context.Context, bookUID string) ([]model.Review, error)
	Delete(ctx context.Context, uid string) error
}

type ReviewService interface {
	AddReview(ctx context.Context, bookUID string, author *model.User, rating int, text string) (*model.Review, error)
	GetReview(ctx context.Context, uid string) (*model.Review, error)
	ListBookReviews(ctx context.Context, bookUID string) ([]model.Review, error)
	DeleteReview(ctx context.Context, uid string, actor *model.User) error
}
