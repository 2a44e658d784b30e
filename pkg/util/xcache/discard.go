package xcache

import (
	"context"
)

// NewDiscard returns a new cache implementation which discards all
// operations. It is used when caching is disabled.
func NewDiscard[T any]() Cache[T] {
	return discardCacheImpl[T]{}
}

type discardCacheImpl[T any] struct {
}

// Get always reports a miss, falling back to the loader if one is set.
func (s discardCacheImpl[T]) Get(ctx context.Context, key string, options ...Option[T]) (T, bool) {
	o := MakeOptions(options...)
	return o.Loader(ctx, key)
}

// Set drops the value.
func (s discardCacheImpl[T]) Set(_ context.Context, _ string, _ T, _ ...Option[T]) {
}

// Delete does nothing.
func (s discardCacheImpl[T]) Delete(_ context.Context, _ string) {
}
