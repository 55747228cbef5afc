package ports

import (
	"context"

	"quillist/internal/model"
)

type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) (*model.Tag, error)
	GetByUID(ctx context.Context, uid string) (*model.Tag, error)
	GetByName(ctx context.Context, name string) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
	Update(ctx context.Context, uid string, name string) error
	Delete(ctx context.Context, uid string) error
	LinkToBook(ctx context.Context, bookUID string, tagUID string) error
	ListByBook(ctx context.Context, bookUID string) ([]model.Tag, error)
}

type TagService interface {
	ListTags(ctx context.Context) ([]model.Tag, error)
	CreateTag(ctx context.Context, name string) (*model.Tag, error)
	UpdateTag(ctx context.Context, uid string, name string) error
	DeleteTag(ctx context.Context, uid string) error
	AddTagsToBook(ctx context.Context, bookUID string, names []string) ([]model.Tag, error)
	ListBookTags(ctx context.Context, bookUID string) ([]model.Tag, error)
}
