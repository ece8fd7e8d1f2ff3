package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	// Allow reports whether the request is within the limit. Backend
	// failures fail open: the request is allowed and the error returned
	// for logging.
	Allow(ctx context.Context, key string) (bool, error)
}

// noop always allows. Used when no Redis credentials are configured.
type noop struct{}

// NewNoop returns a Limiter that allows every request.
func NewNoop() Limiter {
	return noop{}
}

func (noop) Allow(context.Context, string) (bool, error) {
	return true, nil
}

// redisLimiter is a fixed-window counter on Redis: INCR the window key and
// set its TTL on first increment.
type redisLimiter struct {
	client redis.UniversalClient
	limit  int
	window time.Duration
	prefix string
}

// NewRedis builds a fixed-window Limiter allowing limit requests per window.
func NewRedis(client redis.UniversalClient, limit int, window time.Duration, prefix string) Limiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &redisLimiter{client: client, limit: limit, window: window, prefix: prefix}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := fmt.Sprintf("%s:%s:%d", l.prefix, key, time.Now().UnixNano()/int64(l.window))

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, bucket)
	pipe.Expire(ctx, bucket, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		// Fail open rather than blocking traffic on a limiter outage.
		return true, fmt.Errorf("rate limit check: %w", err)
	}

	return count.Val() <= int64(l.limit), nil
}
