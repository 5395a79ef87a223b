package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/yatube-backend/internal/adapter/cache/memory"
	"github.com/heartmarshall/yatube-backend/internal/adapter/cache/redis"
	"github.com/heartmarshall/yatube-backend/internal/adapter/postgres"
	"github.com/heartmarshall/yatube-backend/internal/auth"
	"github.com/heartmarshall/yatube-backend/internal/config"
	"github.com/heartmarshall/yatube-backend/migrations"
)

const cachePingTimeout = 2 * time.Second

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the page cache backend, and serves HTTP until ctx is done.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("cache_backend", cfg.Cache.Backend),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool, migrations.FS)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	deps := Deps{
		Pool:   pool,
		Tokens: auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Logger: logger,
	}

	if cfg.Cache.UsesRedis() {
		store := redis.New(redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			Prefix:   cfg.Cache.RedisPrefix,
		})
		defer func() { _ = store.Close() }()
		pingCache(ctx, store, cfg.Cache.RedisAddr, logger)
		deps.Cache = store
		deps.CachePinger = store
	} else {
		store, err := memory.New(memory.WithMaxEntries(cfg.Cache.MaxEntries))
		if err != nil {
			return fmt.Errorf("create cache: %w", err)
		}
		deps.Cache = store
	}

	handler, stop, err := NewHandler(*cfg, deps)
	if err != nil {
		return err
	}
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// pingCache reports an unreachable Redis at startup. The page cache falls
// back to rendering, so this is not fatal.
func pingCache(ctx context.Context, store *redis.Store, addr string, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, cachePingTimeout)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		logger.WarnContext(ctx, "page cache unreachable, serving uncached",
			slog.String("addr", addr),
			slog.String("error", err.Error()),
		)
		return
	}
	logger.Info("page cache connected", slog.String("addr", addr))
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
// within ShutdownTimeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
