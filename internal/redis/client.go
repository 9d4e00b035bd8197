package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Client is the durable key-value store behind the snapshot stores.
// Each store keeps its full state under a single key, rewritten on
// every mutation.
type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// SaveSnapshot serializes value and rewrites the snapshot under key.
func (c *Client) SaveSnapshot(key string, value interface{}) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return c.rdb.Set(ctx, key, jsonData, 0).Err()
}

// LoadSnapshot reads the snapshot under key into dest. The boolean
// reports whether a snapshot existed.
func (c *Client) LoadSnapshot(key string, dest interface{}) (bool, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return true, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
