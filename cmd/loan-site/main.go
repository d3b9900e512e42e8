// cmd/loan-site/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"loan-catalog/internal/app"
	"loan-catalog/internal/common/config"
	"loan-catalog/internal/common/database"
	"loan-catalog/internal/common/logger"
	"loan-catalog/internal/common/observability"
	"loan-catalog/internal/seo"
	"loan-catalog/internal/server"
	"loan-catalog/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// connectPostgres opens the pool once and waits for the server to answer
// a ping. When every attempt fails the pool is still returned with the
// error: database/sql dials again on the next query, so /go and
// /api/healthz recover once the server is up.
func connectPostgres(ctx context.Context, open func() (*database.PostgresClient, error), attempts int, delay time.Duration, log *zap.Logger) (*database.PostgresClient, error) {
	pg, err := open()
	if err != nil {
		return nil, err
	}
	err = retryWithBackoff(func() error {
		return pg.Ping(ctx)
	}, attempts, delay, log, "PostgreSQL connection")
	return pg, err
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting loan site...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	reg, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("route registry load failed", zap.Error(err))
	}

	ctx := context.Background()

	// --- Init PostgreSQL with retry; pages render without it ---
	pg, err := connectPostgres(ctx, func() (*database.PostgresClient, error) {
		return database.NewPostgres(cfg.Database.Postgres)
	}, 6, 2*time.Second, zapLog)
	switch {
	case pg == nil:
		zapLog.Warn("PostgreSQL unavailable, click tracking is off", zap.Error(err))
	case err != nil:
		zapLog.Warn("PostgreSQL not answering, starting degraded", zap.Error(err))
	default:
		zapLog.Info("PostgreSQL connected successfully")
	}
	if pg != nil {
		defer pg.Close()
	}

	// --- Init Redis with retry; the site runs without it ---
	var redis *database.RedisClient
	if cfg.Database.Redis.Address != "" {
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")
	} else {
		zapLog.Warn("Redis address not set, partner URL cache and click rate limiting are off")
	}

	router, err := app.NewRouter(app.Dependencies{
		Config:   cfg,
		Site:     seo.NewSite(cfg.Site),
		Obs:      obs,
		Registry: reg,
		Postgres: pg,
		Redis:    redis,
		Logger:   log,
	})
	if err != nil {
		zapLog.Fatal("router setup failed", zap.Error(err))
	}

	srv := server.NewServer(cfg.Server, router, log)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		zapLog.Info("Shutdown signal received", zap.String("signal", s.String()))
	case err := <-errCh:
		if err != nil {
			zapLog.Error("HTTP server stopped", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil && err != http.ErrServerClosed {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Loan site stopped")
}
