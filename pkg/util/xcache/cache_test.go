package xcache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wuxler/pintname/pkg/util/xcache"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := xcache.NewMemory[string]()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	cache.Set(ctx, "key", "value")
	got, ok := cache.Get(ctx, "key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)

	cache.Delete(ctx, "key")
	_, ok = cache.Get(ctx, "key")
	assert.False(t, ok)
}

func TestMemoryCache_Loader(t *testing.T) {
	ctx := context.Background()
	cache := xcache.NewMemory[string]()

	loads := 0
	loader := xcache.WithLoader(func(_ context.Context, key string) (string, bool) {
		loads++
		return "loaded:" + key, true
	})

	got, ok := cache.Get(ctx, "key", loader)
	assert.True(t, ok)
	assert.Equal(t, "loaded:key", got)
	assert.Equal(t, 1, loads)

	// second hit is served from the cache
	got, ok = cache.Get(ctx, "key", loader)
	assert.True(t, ok)
	assert.Equal(t, "loaded:key", got)
	assert.Equal(t, 1, loads)

	// a failing loader reports a miss and caches nothing
	_, ok = cache.Get(ctx, "other", xcache.WithLoader(func(_ context.Context, _ string) (string, bool) {
		return "", false
	}))
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "other")
	assert.False(t, ok)
}

func TestDiscardCache(t *testing.T) {
	ctx := context.Background()
	cache := xcache.NewDiscard[int]()

	cache.Set(ctx, "key", 42)
	_, ok := cache.Get(ctx, "key")
	assert.False(t, ok)

	// the loader still runs on every lookup
	got, ok := cache.Get(ctx, "key", xcache.WithLoader(func(_ context.Context, _ string) (int, bool) {
		return 42, true
	}))
	assert.True(t, ok)
	assert.Equal(t, 42, got)
}
