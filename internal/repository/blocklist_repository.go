package repository

import (
	"context"
	"fmt"
	"time"

	"quillist/config"
	"quillist/internal/util"
)

// BlocklistRepository хранит jti отозванных токенов в Redis.
// Запись сама исчезает по TTL, равному сроку жизни access токена,
// поэтому блоклист не растёт вместе с числом логаутов
type BlocklistRepository struct {
	client *config.RedisClient
}

func NewBlocklistRepository(rdb *config.RedisClient) *BlocklistRepository {
	return &BlocklistRepository{rdb}
}

// Add : ставит tombstone для jti. Идемпотентна, повторный вызов
// просто сбрасывает TTL
func (r *BlocklistRepository) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if err := r.client.Client.Set(ctx, r.key(jti), "", ttl).Err(); err != nil {
		return util.LogError("ошибка записи jti в блоклист", err)
	}
	return nil
}

// Contains : проверка на каждый аутентифицированный запрос,
// одна атомарная операция EXISTS
func (r *BlocklistRepository) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Client.Exists(ctx, r.key(jti)).Result()
	if err != nil {
		return false, util.LogError("ошибка чтения блоклиста", err)
	}
	return n > 0, nil
}

func (r *BlocklistRepository) key(jti string) string {
	return fmt.Sprintf("blocklist:%s", jti)
}
