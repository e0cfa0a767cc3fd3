// Package limiter implements the sliding-window login rate limit: at most N
// attempts per client address within a trailing window W. The check runs
// before credential verification so a denial reveals nothing about whether
// the credentials would have succeeded.
package limiter

import (
	"context"
	"errors"
	"time"
)

// ErrBackend reports that the backing counter store could not be reached.
// The login flow treats this as fail-closed: the attempt is denied rather
// than allowed through unthrottled.
var ErrBackend = errors.New("limiter: backend unavailable")

// Config holds the sliding-window parameters.
type Config struct {
	// Attempts is the quota N within one window.
	Attempts int
	// Window is the trailing window duration W.
	Window time.Duration
}

// DefaultConfig matches the production policy: 10 attempts per 15 minutes.
func DefaultConfig() Config {
	return Config{Attempts: 10, Window: 15 * time.Minute}
}

// Limiter records a login attempt for key and reports whether it is allowed.
// Implementations must count atomically with respect to concurrent attempts
// from the same key.
type Limiter interface {
	// Allow records the attempt and returns false once the number of
	// attempts within the trailing window exceeds the quota. A non-nil
	// error means the backing store failed and nothing was decided.
	Allow(ctx context.Context, key string) (bool, error)
}
