package engineports

import "context"

// RateLimiter gates outbound completion calls per session key.
type RateLimiter interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
