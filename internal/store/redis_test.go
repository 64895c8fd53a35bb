package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockRedisClient struct {
	Data   map[string]string
	TTL    time.Duration
	GetErr error
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.GetErr != nil {
		return redis.NewStringResult("", m.GetErr)
	}
	v, ok := m.Data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if m.Data == nil {
		m.Data = map[string]string{}
	}
	switch v := value.(type) {
	case []byte:
		m.Data[key] = string(v)
	case string:
		m.Data[key] = v
	}
	m.TTL = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestNamesCache_RoundTrip(t *testing.T) {
	client := &MockRedisClient{}
	cache := NewNamesCache(client, time.Hour)
	ctx := context.Background()

	names, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, names, "miss should return nil")

	require.NoError(t, cache.Set(ctx, []string{"Coco Gauff", "Iga Swiatek"}))
	assert.Equal(t, time.Hour, client.TTL)
	assert.JSONEq(t, `["Coco Gauff","Iga Swiatek"]`, client.Data[NamesCacheKey])

	names, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Coco Gauff", "Iga Swiatek"}, names)
}

func TestNamesCache_Errors(t *testing.T) {
	cache := NewNamesCache(&MockRedisClient{GetErr: errors.New("connection refused")}, time.Minute)
	_, err := cache.Get(context.Background())
	assert.Error(t, err)

	corrupt := NewNamesCache(&MockRedisClient{Data: map[string]string{NamesCacheKey: "{not a list"}}, time.Minute)
	_, err = corrupt.Get(context.Background())
	assert.Error(t, err)
}
