package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const reportKeyPrefix = "analytics:customer:"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// ReportKey derives the cache key for one report kind and window. The
// boundaries keep full timestamp precision so windows that share calendar
// dates but differ in time of day never collide.
func (c *RedisCache) ReportKey(kind string, from, to time.Time) string {
	return reportKeyPrefix + kind + ":" + from.Format(time.RFC3339Nano) + ":" + to.Format(time.RFC3339Nano)
}

// GetReport unmarshals a cached report into dest. Returns false on a miss.
func (c *RedisCache) GetReport(ctx context.Context, key string, dest interface{}) (bool, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) SetReport(ctx context.Context, key string, report interface{}) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

// InvalidateReports drops every cached report so the next request recomputes.
func (c *RedisCache) InvalidateReports(ctx context.Context) error {
	keys, err := c.Client.Keys(ctx, reportKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}
