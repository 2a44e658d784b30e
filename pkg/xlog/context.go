package xlog

import (
	"context"
)

// C is a short alias of FromContext.
var C = FromContext

type contextKey struct{}

// FromContext returns the Logger carried by ctx, falling back to the
// package default when none was injected.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		logger = Default()
	}
	return logger
}

// WithContext returns a child context carrying the current Logger extended
// with args.
func WithContext(ctx context.Context, args ...any) context.Context {
	logger := FromContext(ctx)
	return context.WithValue(ctx, contextKey{}, logger.With(args...))
}
