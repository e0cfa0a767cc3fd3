package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rockpoolstays/innboard/internal/dashboard/limiter"
	"github.com/rockpoolstays/innboard/pkg/jwtx"
)

// ErrNoSessionSecret means SESSION_SECRET is unset or empty. The service
// refuses to start rather than sign tokens with a guessable key.
var ErrNoSessionSecret = errors.New("SESSION_SECRET must be set")

// Config holds everything the service reads from the environment.
type Config struct {
	Env  string // "dev" or "prod"
	Port string

	DatabaseFile string

	// RedisAddr enables the redis login limiter backend when set; empty
	// means the in-process limiter.
	RedisAddr string

	SessionSecret []byte
	SessionTTL    time.Duration

	LoginLimiter limiter.Config

	LogLevel  string
	LogFormat string

	ShutdownGracePeriod time.Duration
}

// LoadConfig reads configuration from the environment, layering a .env file
// underneath when one is present.
func LoadConfig() (Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	cfg := Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		Port:                getEnvOrDefault("PORT", "8080"),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "innboard.db"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		SessionSecret:       []byte(os.Getenv("SESSION_SECRET")),
		LoginLimiter:        limiter.DefaultConfig(),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod: 10 * time.Second,
	}

	if len(cfg.SessionSecret) == 0 {
		return Config{}, ErrNoSessionSecret
	}

	var err error
	if cfg.SessionTTL, err = getDurationOrDefault("SESSION_TTL", jwtx.DefaultSessionTTL); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownGracePeriod, err = getDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod); err != nil {
		return Config{}, err
	}
	if cfg.LoginLimiter.Attempts, err = getIntOrDefault("LOGIN_RATE_LIMIT_ATTEMPTS", cfg.LoginLimiter.Attempts); err != nil {
		return Config{}, err
	}
	if cfg.LoginLimiter.Window, err = getDurationOrDefault("LOGIN_RATE_LIMIT_WINDOW", cfg.LoginLimiter.Window); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// IsProd reports whether the service is running with production hardening
// (Secure cookies, no source locations in logs).
func (c Config) IsProd() bool {
	return c.Env == "prod"
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationOrDefault(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getIntOrDefault(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}
