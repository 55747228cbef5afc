package repository_test

import (
	"context"
	"testing"
	"time"

	"quillist/config"
	"quillist/internal/apperrors"
	"quillist/internal/model"
	"quillist/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookColumns = []string{
	"uid", "title", "author", "publisher", "published_date",
	"page_count", "language", "user_uid", "created_at", "updated_at",
}

func newMockBookRepo(t *testing.T) (*repository.BookRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	database := &config.Database{DB: sqlx.NewDb(db, "sqlmock")}
	return repository.NewBookRepository(database), mock
}

func TestBookGetByUID_NotFound(t *testing.T) {
	repo, mock := newMockBookRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM books WHERE uid").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(bookColumns))

	_, err := repo.GetByUID(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookGetByUID_Found(t *testing.T) {
	repo, mock := newMockBookRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM books WHERE uid").
		WithArgs("book-uid").
		WillReturnRows(sqlmock.NewRows(bookColumns).
			AddRow("book-uid", "Дюна", "Фрэнк Герберт", "Chilton Books", now, 412, "ru", "owner-uid", now, now))

	book, err := repo.GetByUID(context.Background(), "book-uid")

	require.NoError(t, err)
	assert.Equal(t, "Дюна", book.Title)
	assert.Equal(t, "owner-uid", book.UserUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookUpdate_NotFound(t *testing.T) {
	repo, mock := newMockBookRepo(t)

	mock.ExpectExec("UPDATE books").
		WithArgs("missing", "Дюна", "Фрэнк Герберт", "Chilton Books", 412, "ru").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &model.Book{
		UID:       "missing",
		Title:     "Дюна",
		Author:    "Фрэнк Герберт",
		Publisher: "Chilton Books",
		PageCount: 412,
		Language:  "ru",
	})

	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookDelete_NotFound(t *testing.T) {
	repo, mock := newMockBookRepo(t)

	mock.ExpectExec("DELETE FROM books").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookDelete_Success(t *testing.T) {
	repo, mock := newMockBookRepo(t)

	mock.ExpectExec("DELETE FROM books").
		WithArgs("book-uid").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "book-uid")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
