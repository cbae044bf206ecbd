package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vindlokaal/businessprofiles/backend/pkg/config"
)

// Client owns the service's Redis connection. The API runs fine without it;
// callers treat a failed connect as "no cache".
type Client struct {
	client *redis.Client
}

// NewClient connects to Redis and verifies the connection with a ping before
// handing it out.
func NewClient(cfg *config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: client}, nil
}

// Client exposes the underlying go-redis client to adapters.
func (c *Client) Client() *redis.Client {
	return c.client
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// Ping checks that Redis is still reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
