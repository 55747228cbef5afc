package ports

import (
	"context"

	"quillist/internal/model"
)

// BookRepository : SQL слой
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) (*model.Book, error)
	GetByUID(ctx context.Context, uid string) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	ListByUser(ctx context.Context, userUID string) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, uid string) error
}

// CacheRepository : Redis слой
type CacheRepository interface {
	SetBook(ctx context.Context, book *model.Book) error
	GetBook(ctx context.Context, uid string) (*model.Book, error)
	DeleteBook(ctx context.Context, uid string) error
}

type BookService interface {
	CreateBook(ctx context.Context, book *model.Book, owner *model.User) (*model.Book, error)
	GetBook(ctx context.Context, uid string) (*model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	ListUserBooks(ctx context.Context, userUID string) ([]model.Book, error)
	UpdateBook(ctx context.Context, book *model.Book, actor *model.User) (*model.Book, error)
	DeleteBook(ctx context.Context, uid string, actor *model.User) error
	CoverUploadURL(ctx context.Context, uid string, actor *model.User) (string, error)
	CoverGetURL(ctx context.Context, uid string) (string, error)
}
