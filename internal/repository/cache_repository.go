package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quillist/config"
	"quillist/internal/model"
	"quillist/internal/util"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetBook(ctx context.Context, book *model.Book) error {
	data, err := json.Marshal(book)
	if err != nil {
		return util.LogError("ошибка сериализации книги", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(book.UID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetBook(ctx context.Context, uid string) (*model.Book, error) {
	val, err := r.client.Client.Get(ctx, r.key(uid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения книги из Redis", err)
	}

	var book model.Book
	if err := json.Unmarshal([]byte(val), &book); err != nil {
		return nil, util.LogError("ошибка десериализации книги из кэша", err)
	}
	return &book, nil
}

func (r *CacheRepository) DeleteBook(ctx context.Context, uid string) error {
	if err := r.client.Client.Del(ctx, r.key(uid)).Err(); err != nil {
		return util.LogError("ошибка удаления книги из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(uid string) string {
	return fmt.Sprintf("book:%s", uid)
}
