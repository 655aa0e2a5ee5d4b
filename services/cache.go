package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache bọc redis client cho cache-aside: value được serialize JSON,
// controller giữ một instance thay vì gọi thẳng client
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Fetch đọc và decode một key. Trả về false khi key không tồn tại hoặc đã hết
// hạn, target khi đó không bị đụng tới.
func (c *Cache) Fetch(ctx context.Context, key string, target interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return false, err
	}
	return true, nil
}

// Store ghi value dưới dạng JSON kèm TTL
func (c *Cache) Store(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, ttl).Err()
}

// Invalidate xóa một loạt key sau khi ghi dữ liệu gốc
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
