package limiter

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process sliding-window limiter used when no redis backend
// is configured (local development, tests). Same semantics as Redis, scoped
// to a single process.
type Memory struct {
	cfg Config

	mu        sync.Mutex
	attempts  map[string][]time.Time
	lastSweep time.Time
}

func NewMemory(cfg Config) *Memory {
	return &Memory{
		cfg:       cfg,
		attempts:  make(map[string][]time.Time),
		lastSweep: time.Now(),
	}
}

func (l *Memory) Allow(_ context.Context, key string) (bool, error) {
	now := time.Now()
	cutoff := now.Add(-l.cfg.Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.maybeSweep(now, cutoff)

	kept := l.attempts[key][:0]
	for _, t := range l.attempts[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	l.attempts[key] = kept

	return len(kept) <= l.cfg.Attempts, nil
}

// maybeSweep drops keys whose attempts have all aged out of the window, so
// one-off clients don't leave entries behind forever. At most once per
// window; caller holds the mutex.
func (l *Memory) maybeSweep(now time.Time, cutoff time.Time) {
	if now.Sub(l.lastSweep) < l.cfg.Window {
		return
	}
	l.lastSweep = now

	for k, ts := range l.attempts {
		// Attempts are appended in order, so the last one is the newest.
		if len(ts) == 0 || !ts[len(ts)-1].After(cutoff) {
			delete(l.attempts, k)
		}
	}
}
