package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "list:"

// ListCache holds rendered list pages for a short time. A nil client
// disables it; every call then behaves as a miss.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListCache(rdb *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{rdb: rdb, ttl: ttl}
}

func (c *ListCache) Enabled() bool { return c != nil && c.rdb != nil && c.ttl > 0 }

// Key scopes a cached page to the resource, the caller's token and the query.
func Key(resource, token, query string) string {
	sum := sha256.Sum256([]byte(token))
	return keyPrefix + resource + ":" + hex.EncodeToString(sum[:8]) + ":" + query
}

// Get loads key into dest. It reports false on a miss.
func (c *ListCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *ListCache) Set(ctx context.Context, key string, v any) error {
	if !c.Enabled() {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate drops every cached page of resource, for all callers.
func (c *ListCache) Invalidate(ctx context.Context, resource string) error {
	if !c.Enabled() {
		return nil
	}
	pattern := keyPrefix + resource + ":*"
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache del %s: %w", pattern, err)
	}
	log.Printf("cache: invalidated %d %s pages", len(keys), resource)
	return nil
}
