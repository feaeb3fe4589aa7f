package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisBackend keeps the document in a redis string.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend returns a backend storing the document under key.
func NewRedisBackend(client *redis.Client, key string) *RedisBackend {
	return &RedisBackend{client: client, key: key}
}

func (b *RedisBackend) String() string { return "redis:" + b.key }

// Load gets the key, a missing key is ErrNotFound.
func (b *RedisBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get %q from redis: %w", b.key, err)
	}
	return data, nil
}

// Save sets the key with no expiration.
func (b *RedisBackend) Save(ctx context.Context, data []byte) error {
	if err := b.client.Set(ctx, b.key, string(data), 0).Err(); err != nil {
		return fmt.Errorf("could not set %q in redis: %w", b.key, err)
	}
	return nil
}

// Close closes the redis client.
func (b *RedisBackend) Close() error { return b.client.Close() }
