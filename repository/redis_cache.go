package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheTTL bounds how long a memoized solve survives. Solve inputs are
// immutable, so the TTL only caps memory in the Redis instance.
const cacheTTL = 24 * time.Hour

// RedisCache is a CacheRepository backed by Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects a cache to the Redis instance at addr.
func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Get returns the cached value for key, with false on a miss or any
// Redis error. Cache errors degrade to misses.
func (r *RedisCache) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key with the cache TTL.
func (r *RedisCache) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.client.Set(ctx, key, value, cacheTTL).Err()
}
