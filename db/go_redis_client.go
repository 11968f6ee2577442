package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const scanBatchSize = 100

// GoRedisClient implements RedisClient on top of go-redis.
type GoRedisClient struct {
	client *redis.Client
	logger *zap.Logger
}

// NewGoRedisClient wraps an already configured go-redis client.
func NewGoRedisClient(client *redis.Client, logger *zap.Logger) *GoRedisClient {
	return &GoRedisClient{
		client: client,
		logger: logger,
	}
}

// Set sets a key-value pair in Redis
func (r *GoRedisClient) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GoRedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

// Keys lists keys matching pattern using SCAN, so large keyspaces do not
// block the server.
func (r *GoRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys %q: %w", pattern, err)
	}
	r.logger.Debug("Scanned keys", zap.String("pattern", pattern), zap.Int("count", len(keys)))
	return keys, nil
}

func (r *GoRedisClient) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *GoRedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *GoRedisClient) Close() error {
	r.logger.Info("Closing Redis connection")
	return r.client.Close()
}
