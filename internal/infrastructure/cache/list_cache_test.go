package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type page struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}

func newCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *ListCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, NewListCache(rdb, ttl)
}

func TestListCache_SetGetExpire(t *testing.T) {
	mr, c := newCache(t, 5*time.Minute)
	ctx := context.Background()
	key := Key("loans", "tok", "p=1")

	var got page
	if hit, err := c.Get(ctx, key, &got); hit || err != nil {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}
	if err := c.Set(ctx, key, page{Items: []string{"a"}, Total: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if hit, err := c.Get(ctx, key, &got); !hit || err != nil || got.Total != 1 {
		t.Fatalf("after set: hit=%v err=%v got=%+v", hit, err, got)
	}
	if ttl := mr.TTL(key); ttl != 5*time.Minute {
		t.Fatalf("ttl = %v", ttl)
	}

	mr.FastForward(5*time.Minute + time.Second)
	if hit, _ := c.Get(ctx, key, &got); hit {
		t.Fatal("entry should expire after ttl")
	}
}

func TestListCache_InvalidateScopesByResource(t *testing.T) {
	mr, c := newCache(t, time.Minute)
	ctx := context.Background()

	_ = c.Set(ctx, Key("loans", "a", "p=1"), page{})
	_ = c.Set(ctx, Key("loans", "b", "p=2"), page{})
	_ = c.Set(ctx, Key("enquiries", "a", "p=1"), page{})

	if err := c.Invalidate(ctx, "loans"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	keys := mr.Keys()
	if len(keys) != 1 || !strings.HasPrefix(keys[0], "list:enquiries:") {
		t.Fatalf("remaining keys = %v", keys)
	}
}

func TestListCache_KeyHidesToken(t *testing.T) {
	k := Key("loans", "super-secret-token", "p=1")
	if strings.Contains(k, "super-secret-token") {
		t.Fatalf("raw token leaked into key %q", k)
	}
	if Key("loans", "a", "p=1") == Key("loans", "b", "p=1") {
		t.Fatal("different tokens must not share a key")
	}
}

func TestListCache_Disabled(t *testing.T) {
	c := NewListCache(nil, time.Minute)
	ctx := context.Background()
	if c.Enabled() {
		t.Fatal("nil client must disable cache")
	}
	if err := c.Set(ctx, "k", page{}); err != nil {
		t.Fatalf("Set on disabled: %v", err)
	}
	var p page
	if hit, err := c.Get(ctx, "k", &p); hit || err != nil {
		t.Fatalf("Get on disabled: hit=%v err=%v", hit, err)
	}
	if err := c.Invalidate(ctx, "loans"); err != nil {
		t.Fatalf("Invalidate on disabled: %v", err)
	}
}
