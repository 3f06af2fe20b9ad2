package adapters

import (
	"context"
	"errors"
	"sync"
	"time"

	ports "github.com/DhrubaAgarwalla/portfolio-chat/chatbot/engine/ports"
)

// ErrRateLimited is returned when a session has exhausted its tokens.
var ErrRateLimited = errors.New("rate limit exceeded")

// Ensure TokenBucket implements the RateLimiter port.
var _ ports.RateLimiter = (*TokenBucket)(nil)

// TokenBucket is a per-key token bucket. With capacity 1 it degenerates to
// a one-outstanding-request gate per session, which is how the engine
// configures it by default.
type TokenBucket struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	capacity   int
	refillRate time.Duration
}

type bucket struct {
	tokens     int
	lastRefill time.Time
}

// NewTokenBucket creates a limiter with the given per-key capacity and
// refill interval.
func NewTokenBucket(capacity int, refillRate time.Duration) *TokenBucket {
	return &TokenBucket{
		buckets:    make(map[string]*bucket),
		capacity:   capacity,
		refillRate: refillRate,
	}
}

// Acquire takes a token for key or fails with ErrRateLimited. The returned
// release puts the token back.
func (tb *TokenBucket) Acquire(_ context.Context, key string) (func(), error) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	b, ok := tb.buckets[key]
	if !ok {
		b = &bucket{tokens: tb.capacity, lastRefill: time.Now()}
		tb.buckets[key] = b
	}

	if tb.refillRate > 0 {
		elapsed := time.Since(b.lastRefill)
		if refill := int(elapsed / tb.refillRate); refill > 0 {
			b.tokens = min(b.tokens+refill, tb.capacity)
			b.lastRefill = b.lastRefill.Add(time.Duration(refill) * tb.refillRate)
		}
	}

	if b.tokens <= 0 {
		return nil, ErrRateLimited
	}
	b.tokens--

	release := func() {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		if b, ok := tb.buckets[key]; ok {
			b.tokens = min(b.tokens+1, tb.capacity)
		}
	}
	return release, nil
}
