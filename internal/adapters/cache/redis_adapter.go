package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vindlokaal/businessprofiles/backend/internal/domain/providers"
	redisclient "github.com/vindlokaal/businessprofiles/backend/internal/infrastructure/clients/redis"
)

// RedisAdapter backs the CacheProvider port with Redis. Its main consumer is
// the audit handler, which caches serialized audit responses under a short
// TTL so dashboard refreshes do not re-run evaluations.
type RedisAdapter struct {
	client *redisclient.Client
}

// NewRedisAdapter wraps an established Redis connection as a CacheProvider.
func NewRedisAdapter(client *redisclient.Client) providers.CacheProvider {
	return &RedisAdapter{
		client: client,
	}
}

// Get returns the raw bytes stored under key. A missing key is an error so
// callers can treat any non-nil error as a miss.
func (a *RedisAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := a.client.Client().Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("key not found: %s", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from cache: %w", err)
	}
	return result, nil
}

// Set writes value under key with a TTL in seconds.
func (a *RedisAdapter) Set(ctx context.Context, key string, value []byte, expirationSeconds int) error {
	expiration := time.Duration(expirationSeconds) * time.Second
	if err := a.client.Client().Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set in cache: %w", err)
	}
	return nil
}

// Delete drops key; deleting an absent key is not an error.
func (a *RedisAdapter) Delete(ctx context.Context, key string) error {
	if err := a.client.Client().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete from cache: %w", err)
	}
	return nil
}

// Exists reports whether key is currently cached.
func (a *RedisAdapter) Exists(ctx context.Context, key string) (bool, error) {
	result, err := a.client.Client().Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check existence in cache: %w", err)
	}
	return result > 0, nil
}
