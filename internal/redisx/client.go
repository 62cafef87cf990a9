package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// New dials the client shared by the profile cache, the order-status cache
// and the dedup keys. The 2s budget keeps a slow cache from stalling a
// portal request; every caller degrades to the database or skips the cache.
func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
}

func Exists(ctx context.Context, rdb *redis.Client, key string) (bool, error) {
	n, err := rdb.Exists(ctx, key).Result()
	return n > 0, err
}
