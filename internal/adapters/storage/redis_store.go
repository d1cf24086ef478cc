package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/comitanigiacomo/consistency-tracker/internal/adapters/cache"
	"github.com/redis/go-redis/v9"
)

type RedisOptions struct {
	cache.Options
	Prefix string
}

type RedisStore struct {
	client *redis.Client
	prefix string
	owned  bool
}

// NewRedisStore shares an existing client; Close leaves it open.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func OpenRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client, err := cache.NewRedisClient(ctx, opts.Options)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "streak:"
	}
	return &RedisStore{client: client, prefix: prefix, owned: true}, nil
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: get %s: %w", key, err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}
