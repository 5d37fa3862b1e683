package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache := NewRedisCache(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

func TestRedisCache_MissAndHit(t *testing.T) {

	cache, mr := newTestRedisCache(t)
	ctx := context.Background()

	if err := cache.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if _, ok := cache.Get(ctx, "projection:1"); ok {
		t.Fatalf("expected miss on empty server")
	}

	if err := cache.Set(ctx, "projection:1", `{"futureValue":1}`, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := mr.Get("personal-site:projection:1")
	if err != nil || raw != `{"futureValue":1}` {
		t.Errorf("expected prefixed key on server, got %q %v", raw, err)
	}
	if ttl := mr.TTL("personal-site:projection:1"); ttl != time.Hour {
		t.Errorf("expected 1h ttl, got %v", ttl)
	}

	val, ok := cache.Get(ctx, "projection:1")
	if !ok || val != `{"futureValue":1}` {
		t.Errorf("expected hit, got %q %v", val, ok)
	}
}

func TestRedisCache_UnprefixedKeysAreInvisible(t *testing.T) {

	cache, mr := newTestRedisCache(t)

	if err := mr.Set("projection:1", "other app"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok := cache.Get(context.Background(), "projection:1"); ok {
		t.Errorf("expected miss for a key outside the prefix")
	}
}

func TestRedisCache_Expiry(t *testing.T) {

	cache, mr := newTestRedisCache(t)
	ctx := context.Background()

	_ = cache.Set(ctx, "k", "v", time.Minute)
	mr.FastForward(time.Minute)

	if _, ok := cache.Get(ctx, "k"); ok {
		t.Errorf("expected entry to expire")
	}
}

func TestRedisCache_ServerDownIsAMiss(t *testing.T) {

	cache, mr := newTestRedisCache(t)
	ctx := context.Background()
	_ = cache.Set(ctx, "k", "v", 0)

	mr.Close()

	if _, ok := cache.Get(ctx, "k"); ok {
		t.Errorf("expected miss when the server is gone")
	}
	if err := cache.Set(ctx, "k", "v", 0); err == nil {
		t.Errorf("expected set to fail when the server is gone")
	}
}
