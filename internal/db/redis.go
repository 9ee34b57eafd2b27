// internal/db/redis.go
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by GetCache when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

const cachePrefix = "portfolio:cache:"

type RedisDB struct {
	Client *redis.Client
}

func NewRedisDB(redisURL string) (*RedisDB, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Log.Info("[Redis] ✅ Connected to Redis")
	return &RedisDB{Client: client}, nil
}

func (r *RedisDB) Close() {
	if r.Client != nil {
		r.Client.Close()
		logger.Log.Info("[Redis] Connection closed")
	}
}

func (r *RedisDB) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// Cache methods

func (r *RedisDB) SetCache(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, cachePrefix+key, data, expiration).Err()
}

func (r *RedisDB) GetCache(ctx context.Context, key string, dest any) error {
	data, err := r.Client.Get(ctx, cachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// InvalidateCache deletes every key matching pattern (glob syntax, prefix applied).
func (r *RedisDB) InvalidateCache(ctx context.Context, pattern string) error {
	var keys []string
	iter := r.Client.Scan(ctx, 0, cachePrefix+pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) > 0 {
		return r.Client.Del(ctx, keys...).Err()
	}
	return nil
}
