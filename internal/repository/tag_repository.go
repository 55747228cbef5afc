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

type TagRepository struct {
	*config.Database
}

func NewTagRepository(database *config.Database) *TagRepository {
	return &TagRepository{database}
}

// Create : сохраняет новый тег
func (r *TagRepository) Create(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	query := `
	INSERT INTO tags (uid, name)
	VALUES ($1, $2)
	RETURNING uid, name, created_at
	`

	created := &model.Tag{}
	err := r.DB.QueryRowxContext(ctx, query, tag.UID, tag.Name).StructScan(created)
	if err != nil {
		return nil, util.LogError("[TagRepo] ошибка вставки данных в БД", err)
	}
	return created, nil
}

// GetByUID : ищет тег по UID
func (r *TagRepository) GetByUID(ctx context.Context, uid string) (*model.Tag, error) {
	var tag model.Tag
	err := r.DB.GetContext(ctx, &tag, `SELECT uid, name, created_at FROM tags WHERE uid = $1`, uid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrTagNotFound
	}
	if err != nil {
		return nil, util.LogError("[TagRepo] не удалось найти тег в БД", err)
	}
	return &tag, nil
}

// GetByName : ищет тег по имени
func (r *TagRepository) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.DB.GetContext(ctx, &tag, `SELECT uid, name, created_at FROM tags WHERE name = $1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrTagNotFound
	}
	if err != nil {
		return nil, util.LogError("[TagRepo] не удалось найти тег по имени", err)
	}
	return &tag, nil
}

// List : все теги, сначала новые
func (r *TagRepository) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.SelectContext(ctx, &tags, `SELECT uid, name, created_at FROM tags ORDER BY created_at DESC`)
	if err != nil {
		return nil, util.LogError("[TagRepo] не удалось получить список тегов", err)
	}
	return tags, nil
}

// Update : переименовывает тег
func (r *TagRepository) Update(ctx context.Context, uid string, name string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE tags SET name = $2 WHERE uid = $1`, uid, name)
	if err != nil {
		return util.LogError("[TagRepo] не удалось обновить тег", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.ErrTagNotFound
	}
	return nil
}

// Delete : удаляет тег вместе со связями
func (r *TagRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM tags WHERE uid = $1`, uid)
	if err != nil {
		return util.LogError("[TagRepo] не удалось удалить тег", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperrors.ErrTagNotFound
	}
	return nil
}

// LinkToBook : привязывает тег к книге через join таблицу
func (r *TagRepository) LinkToBook(ctx context.Context, bookUID string, tagUID string) error {
	query := `
	INSERT INTO book_tags (book_uid, tag_uid)
	VALUES ($1, $2)
	ON CONFLICT (book_uid, tag_uid) DO NOTHING
	`
	if _, err := r.DB.ExecContext(ctx, query, bookUID, tagUID); err != nil {
		return util.LogError("[TagRepo] не удалось привязать тег к книге", err)
	}
	return nil
}

// ListByBook : теги книги
func (r *TagRepository) ListByBook(ctx context.Context, bookUID string) ([]model.Tag, error) {
	query := `
	SELECT t.uid, t.name, t.created_at
	FROM tags t
	JOIN book_tags bt ON bt.tag_uid = t.uid
	WHERE bt.book_uid = $1
	ORDER BY t.created_at DESC
	`
	var tags []model.Tag
	if err := r.DB.SelectContext(ctx, &tags, query, bookUID); err != nil {
		return nil, util.LogError("[TagRepo] не удалось получить теги книги", err)
	}
	return tags, nil
}
