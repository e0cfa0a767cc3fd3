package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	dashhttp "github.com/rockpoolstays/innboard/internal/dashboard/http"
	"github.com/rockpoolstays/innboard/internal/dashboard/limiter"
	"github.com/rockpoolstays/innboard/internal/dashboard/service"
	"github.com/rockpoolstays/innboard/internal/dashboard/store"
	"github.com/rockpoolstays/innboard/internal/dashboard/store/drivers/sqlite"
	"github.com/rockpoolstays/innboard/pkg/jwtx"
	"github.com/rockpoolstays/innboard/pkg/slogx"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Application wires the store, services and HTTP surface together and owns
// the server lifecycle.
type Application struct {
	cfg    Config
	log    *slog.Logger
	store  store.Store
	rdb    *redis.Client
	server *http.Server
}

func New(cfg Config) (*Application, error) {
	log := slogx.New(slogx.Config{
		Service: "innboard",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	st, err := sqlite.NewStore("file:" + cfg.DatabaseFile + "?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	signer, err := jwtx.NewHS256(cfg.SessionSecret, "innboard")
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("session signer: %w", err)
	}

	app := &Application{cfg: cfg, log: log, store: st}

	var loginLimiter limiter.Limiter
	if cfg.RedisAddr != "" {
		app.rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		loginLimiter = limiter.NewRedis(app.rdb, cfg.LoginLimiter)
		log.Info("login limiter using redis backend", "addr", cfg.RedisAddr)
	} else {
		loginLimiter = limiter.NewMemory(cfg.LoginLimiter)
		log.Info("login limiter using in-process backend")
	}

	router := dashhttp.NewRouter(dashhttp.RouterConfig{
		Logger: log,
		Store:  st,
		Auth:   &service.AuthService{Store: st},
		Sessions: &service.SessionService{
			Signer: signer,
			TTL:    cfg.SessionTTL,
			Secure: cfg.IsProd(),
			Issuer: "innboard",
		},
		Records: &service.RecordsService{Store: st},
		Limiter: loginLimiter,
	})

	app.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return app, nil
}

// Run serves until SIGINT/SIGTERM, then drains in-flight requests within the
// configured grace period.
func (a *Application) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		a.log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGracePeriod)
	defer cancel()
	return a.Shutdown(ctx)
}

// Shutdown stops the server and closes backing resources.
func (a *Application) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)

	if a.rdb != nil {
		if cerr := a.rdb.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if cerr := a.store.Close(); cerr != nil && err == nil {
		err = cerr
	}

	a.log.Info("shutdown complete")
	return err
}
