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

type BookRepository struct {
	*config.Database
}

func NewBookRepository(database *config.Database) *BookRepository {
	return &BookRepository{database}
}

const bookColumns = `uid, title, author, publisher, published_date, page_count, language, user_uid, created_at, updated_at`

// Create : сохраняет новую книгу
func (r *BookRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
	INSERT INTO books (uid, title, author, publisher, published_date, page_count, language, user_uid)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING ` + bookColumns

	created := &model.Book{}
	err := r.DB.QueryRowxContext(ctx, query,
		book.UID,
		book.Title,
		book.Author,
		book.Publisher,
		book.PublishedDate,
		book.PageCount,
		book.Language,
		book.UserUID,
	).StructScan(created)

	if err != nil {
		return nil, util.LogError("[BookRepo] ошибка вставки данных в БД", err)
	}
	return created, nil
}

// GetByUID : ищет книгу по UID
func (r *BookRepository) GetByUID(ctx context.Context, uid string) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE uid = $1`

	var book model.Book
	err := r.DB.GetContext(ctx, &book, query, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrBookNotFound
	}
	if err != nil {
		return nil, util.LogError("[BookRepo] не удалось найти книгу в БД", err)
	}
	return &book, nil
}

// List : все книги, сначала новые
func (r *BookRepository) List(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY created_at DESC`

	var books []model.Book
	if err := r.DB.SelectContext(ctx, &books, query); err != nil {
		return nil, util.LogError("[BookRepo] не удалось получить список книг", err)
	}
	return books, nil
}

// ListByUser : книги, добавленные конкретным пользователем
func (r *BookRepository) ListByUser(ctx context.Context, userUID string) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE user_uid = $1 ORDER BY created_at DESC`

	var books []model.Book
	if err := r.DB.SelectContext(ctx, &books, query, userUID); err != nil {
		return nil, util.LogError("[BookRepo] не удалось получить книги пользователя", err)
	}
	return books, nil
}

// Update : обновляет поля книги
func (r *BookRepository) Update(ctx context.Context, book *model.Book) error {
	query := `
	UPDATE books
	SET title = $2, author = $3, publisher = $4, page_count = $5, language = $6, updated_at = now()
	WHERE uid = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		book.UID,
		book.Title,
		book.Author,
		book.Publisher,
		book.PageCount,
		book.Language,
	)
	if err != nil {
		return util.LogError("[BookRepo] не удалось обновить книгу", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.ErrBookNotFound
	}
	return nil
}

// Delete : удаляет книгу по UID
func (r *BookRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM books WHERE uid = $1`, uid)
	if err != nil {
		return util.LogError("[BookRepo] не удалось удалить книгу", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.ErrBookNotFound
	}
	return nil
}
