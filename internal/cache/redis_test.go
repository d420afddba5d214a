package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ja-he/lunadash/internal/cache"
)

func TestRedis(t *testing.T) {
	addr := os.Getenv("LUNADASH_TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("LUNADASH_TEST_REDIS_ADDRESS not set")
	}

	ctx := context.Background()
	r := cache.NewRedis(cache.RedisOptions{Address: addr, Prefix: "lunadash-test:"})
	defer r.Close()

	if err := r.Ping(ctx); err != nil {
		t.Fatal(err.Error())
	}
	if err := r.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatal(err.Error())
	}
	v, ok, err := r.Get(ctx, "k")
	if err != nil || !ok || string(v) != "v" {
		t.Errorf("expected hit 'v', got '%s' ok=%t err=%v", string(v), ok, err)
	}
	if _, ok, err := r.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("expected clean miss, got ok=%t err=%v", ok, err)
	}
}
