package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"liquidation_backoffice/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "backoffice:"

// redisClient is the part of *redis.Client the store uses.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps each collection under one Redis string key.
type RedisStore struct {
	client    redisClient
	keyPrefix string
}

var _ interfaces.IKeyValueStore = (*RedisStore)(nil)

func NewRedisStore(client redisClient, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = defaultRedisKeyPrefix
	}
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
