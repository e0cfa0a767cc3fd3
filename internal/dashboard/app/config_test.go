package app

import (
	"testing"
	"time"

	"github.com/rockpoolstays/innboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.False(t, cfg.IsProd())
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "innboard.db", cfg.DatabaseFile)
	require.Empty(t, cfg.RedisAddr)
	require.Equal(t, []byte("test-secret"), cfg.SessionSecret)
	require.Equal(t, jwtx.DefaultSessionTTL, cfg.SessionTTL)
	require.Equal(t, 10, cfg.LoginLimiter.Attempts)
	require.Equal(t, 15*time.Minute, cfg.LoginLimiter.Window)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrNoSessionSecret)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("LOGIN_RATE_LIMIT_ATTEMPTS", "5")
	t.Setenv("LOGIN_RATE_LIMIT_WINDOW", "5m")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.True(t, cfg.IsProd())
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, time.Hour, cfg.SessionTTL)
	require.Equal(t, 5, cfg.LoginLimiter.Attempts)
	require.Equal(t, 5*time.Minute, cfg.LoginLimiter.Window)
	require.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("SESSION_TTL", "eight hours")

	_, err := LoadConfig()
	require.Error(t, err)
}
