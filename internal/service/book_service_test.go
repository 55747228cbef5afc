package service_test

import (
	"context"
	"testing"
	"time"

	"quillist/internal/apperrors"
	"quillist/internal/model"
	"quillist/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookRepository struct{ mock.Mock }

func (m *MockBookRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	args := m.Called(ctx, book)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) GetByUID(ctx context.Context, uid string) (*model.Book, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookRepository) ListByUser(ctx context.Context, userUID string) ([]model.Book, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookRepository) Update(ctx context.Context, book *model.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, uid string) error {
	return m.Called(ctx, uid).Error(0)
}

type MockCacheRepository struct{ mock.Mock }

func (m *MockCacheRepository) SetBook(ctx context.Context, book *model.Book) error {
	return m.Called(ctx, book).Error(0)
}

func (m *MockCacheRepository) GetBook(ctx context.Context, uid string) (*model.Book, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockCacheRepository) DeleteBook(ctx context.Context, uid string) error {
	return m.Called(ctx, uid).Error(0)
}

type MockS3Storage struct{ mock.Mock }

func (m *MockS3Storage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) GeneratePresignedPutURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type bookMocks struct {
	books *MockBookRepository
	cache *MockCacheRepository
	s3    *MockS3Storage
}

func newBookService() (*service.BookService, *bookMocks) {
	mocks := &bookMocks{
		books: new(MockBookRepository),
		cache: new(MockCacheRepository),
		s3:    new(MockS3Storage),
	}
	svc := service.NewBookService(mocks.books, mocks.cache, mocks.s3, time.Minute)
	return svc, mocks
}

var bookOwner = &model.User{UID: "owner-uid", Role: model.RoleUser}

func TestCreateBook_AssignsUIDAndOwner(t *testing.T) {
	svc, mocks := newBookService()
	mocks.books.On("Create", mock.Anything, mock.MatchedBy(func(book *model.Book) bool {
		return book.UID != "" && book.UserUID == "owner-uid"
	})).Return(&model.Book{UID: "book-uid", UserUID: "owner-uid"}, nil)

	created, err := svc.CreateBook(context.Background(), &model.Book{Title: "Дюна"}, bookOwner)

	require.NoError(t, err)
	assert.Equal(t, "book-uid", created.UID)
}

func TestGetBook_FromCache(t *testing.T) {
	svc, mocks := newBookService()
	cached := &model.Book{UID: "book-uid", Title: "Дюна"}
	mocks.cache.On("GetBook", mock.Anything, "book-uid").Return(cached, nil)

	book, err := svc.GetBook(context.Background(), "book-uid")

	require.NoError(t, err)
	assert.Equal(t, cached, book)
	mocks.books.AssertNotCalled(t, "GetByUID", mock.Anything, mock.Anything)
}

func TestGetBook_CacheMissFillsCache(t *testing.T) {
	svc, mocks := newBookService()
	stored := &model.Book{UID: "book-uid", Title: "Дюна"}
	mocks.cache.On("GetBook", mock.Anything, "book-uid").Return(nil, nil)
	mocks.books.On("GetByUID", mock.Anything, "book-uid").Return(stored, nil)
	mocks.cache.On("SetBook", mock.Anything, stored).Return(nil)

	book, err := svc.GetBook(context.Background(), "book-uid")

	require.NoError(t, err)
	assert.Equal(t, stored, book)
	mocks.cache.AssertExpectations(t)
}

func TestGetBook_NotFound(t *testing.T) {
	svc, mocks := newBookService()
	mocks.cache.On("GetBook", mock.Anything, "missing").Return(nil, nil)
	mocks.books.On("GetByUID", mock.Anything, "missing").Return(nil, apperrors.ErrBookNotFound)

	_, err := svc.GetBook(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

func TestUpdateBook_NotOwner(t *testing.T) {
	svc, mocks := newBookService()
	mocks.books.On("GetByUID", mock.Anything, "book-uid").Return(&model.Book{UID: "book-uid", UserUID: "someone-else"}, nil)

	_, err := svc.UpdateBook(context.Background(), &model.Book{UID: "book-uid"}, bookOwner)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermission)
	mocks.books.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateBook_InvalidatesCache(t *testing.T) {
	svc, mocks := newBookService()
	existing := &model.Book{UID: "book-uid", UserUID: "owner-uid"}
	updated := &model.Book{UID: "book-uid", UserUID: "owner-uid", Title: "Дюна: Мессия"}

	mocks.books.On("GetByUID", mock.Anything, "book-uid").Return(existing, nil).Once()
	mocks.books.On("Update", mock.Anything, mock.Anything).Return(nil)
	mocks.cache.On("DeleteBook", mock.Anything, "book-uid").Return(nil)
	mocks.books.On("GetByUID", mock.Anything, "book-uid").Return(updated, nil).Once()

	book, err := svc.UpdateBook(context.Background(), &model.Book{UID: "book-uid", Title: "Дюна: Мессия"}, bookOwner)

	require.NoError(t, err)
	assert.Equal(t, "Дюна: Мессия", book.Title)
	mocks.cache.AssertExpectations(t)
}

func TestDeleteBook_AdminCanDeleteForeign(t *testing.T) {
	svc, mocks := newBookService()
	admin := &model.User{UID: "admin-uid", Role: model.RoleAdmin}

	mocks.books.On("GetByUID", mock.Anything, "book-uid").Return(&model.Book{UID: "book-uid", UserUID: "owner-uid"}, nil)
	mocks.books.On("Delete", mock.Anything, "book-uid").Return(nil)
	mocks.cache.On("DeleteBook", mock.Anything, "book-uid").Return(nil)
	mocks.s3.On("DeleteObject", mock.Anything, "covers/book-uid").Return(nil)

	err := svc.DeleteBook(context.Background(), "book-uid", admin)

	require.NoError(t, err)
	mocks.s3.AssertExpectations(t)
}

func TestDeleteBook_ForeignUserDenied(t *testing.T) {
	svc, mocks := newBookService()
	stranger := &model.User{UID: "stranger-uid", Role: model.RoleUser}

	mocks.books.On("GetByUID", mock.Anything, "book-uid").Return(&model.Book{UID: "book-uid", UserUID: "owner-uid"}, nil)

	err := svc.DeleteBook(context.Background(), "book-uid", stranger)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermission)
	mocks.books.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCoverUploadURL_OwnerOnly(t *testing.T) {
	svc, mocks := newBookService()
	stranger := &model.User{UID: "stranger-uid", Role: model.RoleUser}

	mocks.books.On("GetByUID", mock.Anything, "book-uid").Return(&model.Book{UID: "book-uid", UserUID: "owner-uid"}, nil)

	_, err := svc.CoverUploadURL(context.Background(), "book-uid", stranger)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermission)
}

func TestCoverUploadURL_Success(t *testing.T) {
	svc, mocks := newBookService()

	mocks.books.On("GetByUID", mock.Anything, "book-uid").Return(&model.Book{UID: "book-uid", UserUID: "owner-uid"}, nil)
	mocks.s3.On("GeneratePresignedPutURL", mock.Anything, "covers/book-uid", time.Minute).Return("http://s3/put", nil)

	url, err := svc.CoverUploadURL(context.Background(), "book-uid", bookOwner)

	require.NoError(t, err)
	assert.Equal(t, "http://s3/put", url)
}

func TestCoverGetURL_BookNotFound(t *testing.T) {
	svc, mocks := newBookService()
	mocks.books.On("GetByUID", mock.Anything, "missing").Return(nil, apperrors.ErrBookNotFound)

	_, err := svc.CoverGetURL(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
	mocks.s3.AssertNotCalled(t, "GeneratePresignedGetURL", mock.Anything, mock.Anything, mock.Anything)
}
