package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{
		Addr:         addr,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// OpenOptional returns nil instead of failing, so callers can run without redis.
func OpenOptional(addr string, db int) *redis.Client {
	if addr == "" {
		return nil
	}
	r, err := OpenRedis(addr, db)
	if err != nil {
		log.Printf("redis: unavailable at %s (%v); caching disabled", addr, err)
		return nil
	}
	log.Printf("redis: connected to %s", addr)
	return r
}
