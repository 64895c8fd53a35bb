package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// NamesCacheKey holds the JSON-encoded player name list.
const NamesCacheKey = "players:names"

// RedisClient defines the subset of the Redis client the cache uses
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// OpenRedis parses a redis:// URL and verifies the connection.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// NamesCache keeps the resolved name list in Redis with a TTL.
type NamesCache struct {
	client RedisClient
	ttl    time.Duration
}

func NewNamesCache(client RedisClient, ttl time.Duration) *NamesCache {
	return &NamesCache{client: client, ttl: ttl}
}

// Get returns nil without error on a cache miss.
func (c *NamesCache) Get(ctx context.Context) ([]string, error) {
	raw, err := c.client.Get(ctx, NamesCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("decode cached names: %w", err)
	}
	return names, nil
}

func (c *NamesCache) Set(ctx context.Context, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, NamesCacheKey, raw, c.ttl).Err()
}
