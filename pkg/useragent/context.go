package useragent

import (
	"context"
)

type resultContextKey struct{}

func SetResultToContext(ctx context.Context, r Result) context.Context {
	return context.WithValue(ctx, resultContextKey{}, r)
}

// GetResultFromContext returns the Result stored by Middleware and whether
// one was present.
func GetResultFromContext(ctx context.Context) (Result, bool) {
	r, ok := ctx.Value(resultContextKey{}).(Result)
	return r, ok
}
