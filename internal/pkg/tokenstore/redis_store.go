// FILE: internal/pkg/tokenstore/redis_store.go
package tokenstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store tracks revoked access tokens by their jti claim. Entries expire
// together with the token itself, so the set never needs manual cleanup.
type Store interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) key(jti string) string {
	return "revoked_token:" + jti
}

func (s *redisStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to track.
		return nil
	}
	return s.rdb.Set(ctx, s.key(jti), "1", ttl).Err()
}

func (s *redisStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
