package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"quillist/internal/apperrors"
	"quillist/internal/model"
	"quillist/internal/ports"

	"github.com/google/uuid"
)

type BookService struct {
	bookRepository  ports.BookRepository
	cacheRepository ports.CacheRepository
	s3Storage       ports.S3Storage
	ttl             time.Duration
}

func NewBookService(
	bookRepository ports.BookRepository,
	cacheRepository ports.CacheRepository,
	s3Storage ports.S3Storage,
	ttl time.Duration,
) *BookService {
	return &BookService{
		bookRepository:  bookRepository,
		cacheRepository: cacheRepository,
		s3Storage:       s3Storage,
		ttl:             ttl,
	}
}

func (s *BookService) CreateBook(ctx context.Context, book *model.Book, owner *model.User) (*model.Book, error) {
	book.UID = uuid.New().String()
	book.UserUID = owner.UID

	created, err := s.bookRepository.Create(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания книги: %w", err)
	}
	return created, nil
}

// GetBook : чтение через кэш, промах докладывается из БД
func (s *BookService) GetBook(ctx context.Context, uid string) (*model.Book, error) {
	cached, err := s.cacheRepository.GetBook(ctx, uid)
	if err != nil {
		// кэш не авторитетен, идем в БД
		log.Printf("ошибка чтения кэша книг: %v", err)
	}
	if cached != nil {
		return cached, nil
	}

	book, err := s.bookRepository.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := s.cacheRepository.SetBook(ctx, book); err != nil {
		log.Printf("ошибка записи книги в кэш: %v", err)
	}
	return book, nil
}

func (s *BookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.bookRepository.List(ctx)
}

func (s *BookService) ListUserBooks(ctx context.Context, userUID string) ([]model.Book, error) {
	return s.bookRepository.ListByUser(ctx, userUID)
}

// UpdateBook : обновлять книгу может только тот, кто её добавил
func (s *BookService) UpdateBook(ctx context.Context, book *model.Book, actor *model.User) (*model.Book, error) {
	existing, err := s.bookRepository.GetByUID(ctx, book.UID)
	if err != nil {
		return nil, err
	}
	if existing.UserUID != actor.UID {
		return nil, apperrors.ErrInsufficientPermission
	}

	if err := s.bookRepository.Update(ctx, book); err != nil {
		return nil, err
	}

	if err := s.cacheRepository.DeleteBook(ctx, book.UID); err != nil {
		log.Printf("ошибка инвалидации кэша книги: %v", err)
	}

	return s.bookRepository.GetByUID(ctx, book.UID)
}

// DeleteBook : владелец или админ
func (s *BookService) DeleteBook(ctx context.Context, uid string, actor *model.User) error {
	existing, err := s.bookRepository.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if existing.UserUID != actor.UID && actor.Role != model.RoleAdmin {
		return apperrors.ErrInsufficientPermission
	}

	if err := s.bookRepository.Delete(ctx, uid); err != nil {
		return err
	}

	if err := s.cacheRepository.DeleteBook(ctx, uid); err != nil {
		log.Printf("ошибка инвалидации кэша книги: %v", err)
	}
	if err := s.s3Storage.DeleteObject(ctx, coverKey(uid)); err != nil {
		log.Printf("ошибка удаления обложки из S3: %v", err)
	}
	return nil
}

// CoverUploadURL : presigned PUT ссылка, грузить обложку может владелец
func (s *BookService) CoverUploadURL(ctx context.Context, uid string, actor *model.User) (string, error) {
	book, err := s.bookRepository.GetByUID(ctx, uid)
	if err != nil {
		return "", err
	}
	if book.UserUID != actor.UID {
		return "", apperrors.ErrInsufficientPermission
	}

	return s.s3Storage.GeneratePresignedPutURL(ctx, coverKey(uid), s.ttl)
}

// CoverGetURL : presigned GET ссылка на обложку
func (s *BookService) CoverGetURL(ctx context.Context, uid string) (string, error) {
	if _, err := s.bookRepository.GetByUID(ctx, uid); err != nil {
		return "", err
	}
	return s.s3Storage.GeneratePresignedGetURL(ctx, coverKey(uid), s.ttl)
}

func coverKey(bookUID string) string {
	return "covers/" + bookUID
}
