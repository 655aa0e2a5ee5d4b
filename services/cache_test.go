package services

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newUnreachableCache() *Cache {
	return NewCache(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
}

func TestCacheInvalidateWithoutKeys(t *testing.T) {
	cache := newUnreachableCache()

	// Không có key thì không gọi redis, không lỗi
	require.NoError(t, cache.Invalidate(context.Background()))
}

func TestCacheStoreUnencodableValue(t *testing.T) {
	cache := newUnreachableCache()

	err := cache.Store(context.Background(), "trips:public", make(chan int), time.Minute)
	require.Error(t, err)
}

func TestCacheFetchConnectionError(t *testing.T) {
	cache := newUnreachableCache()

	var trips []string
	hit, err := cache.Fetch(context.Background(), "trips:public", &trips)
	require.Error(t, err)
	require.False(t, hit)
	require.Nil(t, trips)
}
