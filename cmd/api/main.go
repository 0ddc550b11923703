package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/senseiarena/arena/internal/app"
	"github.com/senseiarena/arena/internal/auth"
	"github.com/senseiarena/arena/internal/catalog"
	"github.com/senseiarena/arena/internal/domain"
	"github.com/senseiarena/arena/internal/infra"
	"github.com/senseiarena/arena/internal/ledger"
	"github.com/senseiarena/arena/internal/quest"
	"github.com/senseiarena/arena/internal/service"
	"github.com/senseiarena/arena/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := infra.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Storage backend
	var (
		pool          *pgxpool.Pool
		progressStore store.ProgressStore
	)
	if cfg.StorageBackend == "postgres" {
		pool, err = infra.NewPostgresPool(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		logger.Info("connected to postgres")

		if err := infra.RunMigrations(cfg.DSN(), logger); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		progressStore = store.NewPostgresStore(pool)
	} else {
		logger.Info("using in-memory progress store")
		progressStore = store.NewMemoryStore()
	}

	// Quest engine over the default catalog
	engine, err := quest.NewEngine(catalog.Default(), progressStore, domain.SystemClock{}, logger)
	if err != nil {
		return fmt.Errorf("build quest engine: %w", err)
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTSessionExpiry)
	events := infra.NewEventPublisher(cfg.KafkaBrokers, cfg.KafkaEnabled, logger)
	defer events.Close()

	ledgerClient := ledger.NewTestnetClient(logger)
	arena := service.NewArenaService(engine, ledgerClient, jwtMgr, events, logger)

	router := app.NewRouter(app.RouterDeps{
		Pool:        pool,
		Arena:       arena,
		JWTMgr:      jwtMgr,
		Logger:      logger,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})

	addr := fmt.Sprintf(":%d", cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
