package goProof

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// attemptLimiter throttles authorization attempts per client IP with a
// Redis counter window. A throttle is advisory: when the backend is
// unreachable attempts pass unthrottled rather than failing the
// authorization path.
type attemptLimiter struct {
	redis  *redis.Client
	config ThrottleConfig
}

func newAttemptLimiter(redisClient *redis.Client, cfg ThrottleConfig) *attemptLimiter {
	return &attemptLimiter{
		redis:  redisClient,
		config: cfg,
	}
}

// Enforce counts one attempt for ip and reports [ErrRateLimited] once the
// window budget is exhausted.
//
// Enforce may return an error when input validation, dependency calls, or security checks fail.
// Enforce does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (l *attemptLimiter) Enforce(ctx context.Context, ip string) error {
	if l == nil || ip == "" {
		return nil
	}

	key := l.config.RedisPrefix + ":ip:" + ip
	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return nil
	}

	if count == 1 {
		if err := l.redis.Expire(ctx, key, l.config.Window).Err(); err != nil {
			return nil
		}
	}

	if count > int64(l.config.MaxAttempts) {
		return ErrRateLimited
	}

	return nil
}
