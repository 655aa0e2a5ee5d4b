package services

import (
	"context"
	"fmt"
	"time"

	"betravel/errors"
	"betravel/models"
)

// EditSessionTTL là thời gian sống của một phiên chỉnh sửa trên Redis.
// Phiên quá hạn tự biến mất, không cần job dọn dẹp riêng.
const EditSessionTTL = 2 * time.Hour

// EditSessionStore định nghĩa interface lưu trữ phiên chỉnh sửa
type EditSessionStore interface {
	Get(ctx context.Context, id string) (*models.EditSession, error)
	Save(ctx context.Context, session *models.EditSession) error
	Delete(ctx context.Context, id string) error
}

// RedisEditSessionStore lưu phiên chỉnh sửa trên Redis dưới dạng JSON
type RedisEditSessionStore struct {
	cache *Cache
}

func NewRedisEditSessionStore(cache *Cache) *RedisEditSessionStore {
	return &RedisEditSessionStore{cache: cache}
}

func sessionKey(id string) string {
	return fmt.Sprintf("edit_session:%s", id)
}

func (s *RedisEditSessionStore) Get(ctx context.Context, id string) (*models.EditSession, error) {
	var session models.EditSession
	hit, err := s.cache.Fetch(ctx, sessionKey(id), &session)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, errors.NewAppError(errors.ErrCodeSessionNotFound, "Phiên chỉnh sửa không tồn tại hoặc đã hết hạn", nil)
	}
	return &session, nil
}

func (s *RedisEditSessionStore) Save(ctx context.Context, session *models.EditSession) error {
	return s.cache.Store(ctx, sessionKey(session.ID), session, EditSessionTTL)
}

func (s *RedisEditSessionStore) Delete(ctx context.Context, id string) error {
	return s.cache.Invalidate(ctx, sessionKey(id))
}
