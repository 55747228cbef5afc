package service

import (
	"context"
	"errors"
	"fmt"

	"quillist/internal/apperrors"
	"quillist/internal/model"
	"quillist/internal/ports"

	"github.com/google/uuid"
)

type TagService struct {
	tagRepository  ports.TagRepository
	bookRepository ports.BookRepository
}

func NewTagService(tagRepository ports.TagRepository, bookRepository ports.BookRepository) *TagService {
	return &TagService{
		tagRepository:  tagRepository,
		bookRepository: bookRepository,
	}
}

func (s *TagService) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.tagRepository.List(ctx)
}

func (s *TagService) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	_, err := s.tagRepository.GetByName(ctx, name)
	if err == nil {
		return nil, apperrors.ErrTagAlreadyExists
	}
	if !errors.Is(err, apperrors.ErrTagNotFound) {
		return nil, fmt.Errorf("ошибка проверки существования тега: %w", err)
	}

	return s.tagRepository.Create(ctx, &model.Tag{
		UID:  uuid.New().String(),
		Name: name,
	})
}

func (s *TagService) UpdateTag(ctx context.Context, uid string, name string) error {
	return s.tagRepository.Update(ctx, uid, name)
}

func (s *TagService) DeleteTag(ctx context.Context, uid string) error {
	return s.tagRepository.Delete(ctx, uid)
}

// AddTagsToBook : привязывает теги по именам, отсутствующие создаются
func (s *TagService) AddTagsToBook(ctx context.Context, bookUID string, names []string) ([]model.Tag, error) {
	if _, err := s.bookRepository.GetByUID(ctx, bookUID); err != nil {
		return nil, err
	}

	for _, name := range names {
		tag, err := s.tagRepository.GetByName(ctx, name)
		if errors.Is(err, apperrors.ErrTagNotFound) {
			tag, err = s.tagRepository.Create(ctx, &model.Tag{
				UID:  uuid.New().String(),
				Name: name,
			})
		}
		if err != nil {
			return nil, fmt.Errorf("ошибка подготовки тега %q: %w", name, err)
		}

		if err := s.tagRepository.LinkToBook(ctx, bookUID, tag.UID); err != nil {
			return nil, err
		}
	}

	return s.tagRepository.ListByBook(ctx, bookUID)
}

func (s *TagService) ListBookTags(ctx context.Context, bookUID string) ([]model.Tag, error) {
	if _, err := s.bookRepository.GetByUID(ctx, bookUID); err != nil {
		return nil, err
	}
	return s.tagRepository.ListByBook(ctx, bookUID)
}
