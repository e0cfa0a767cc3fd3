package limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemorySweepsStaleKeys(t *testing.T) {
	l := NewMemory(Config{Attempts: 5, Window: 30 * time.Millisecond})
	ctx := context.Background()

	_, err := l.Allow(ctx, "203.0.113.1")
	require.NoError(t, err)
	_, err = l.Allow(ctx, "203.0.113.2")
	require.NoError(t, err)

	l.mu.Lock()
	require.Len(t, l.attempts, 2)
	l.mu.Unlock()

	time.Sleep(40 * time.Millisecond)

	// This attempt is past the window, so the sweep runs and the two stale
	// keys are dropped while the fresh one stays.
	_, err = l.Allow(ctx, "203.0.113.3")
	require.NoError(t, err)

	l.mu.Lock()
	defer l.mu.Unlock()
	require.Len(t, l.attempts, 1)
	require.Contains(t, l.attempts, "203.0.113.3")
}
