package redis

import (
	"context"
	"time"
)

// LoginLimiter throttles admin login attempts per client IP. A fixed window
// counter is enough here; the dashboard has a single legitimate user.
type LoginLimiter struct {
	maxAttempts int64
	window      time.Duration
}

// NewLoginLimiter creates a login limiter
func NewLoginLimiter(maxAttempts int64, window time.Duration) *LoginLimiter {
	return &LoginLimiter{maxAttempts: maxAttempts, window: window}
}

// Allow reports whether another login attempt from ip is permitted.
// The first attempt in a window starts the expiry clock.
func (l *LoginLimiter) Allow(ctx context.Context, ip string) (bool, error) {
	key := "login-attempts:" + ip

	count, err := Incr(ctx, key)
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := Expire(ctx, key, l.window); err != nil {
			return false, err
		}
	}
	return count <= l.maxAttempts, nil
}

// Reset clears the attempt counter for ip, used after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, ip string) error {
	return Del(ctx, "login-attempts:"+ip)
}
