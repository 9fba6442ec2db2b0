package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"covidhelp/internal/domain"
)

// Store keeps the server-side half of a session: session id -> user id.
type Store interface {
	Set(ctx context.Context, sid, userID string, ttl time.Duration) error
	Get(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
}

type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (s *RedisStore) Set(ctx context.Context, sid, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(sid), userID, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, sid string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKey(sid)).Result()
	if err == redis.Nil {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKey(sid)).Err()
}
