package main

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

	"golang.org/x/sync/errgroup"

	"github.com/Simplici0/printquote/internal/budget"
	"github.com/Simplici0/printquote/internal/config"
	"github.com/Simplici0/printquote/internal/db"
	"github.com/Simplici0/printquote/internal/migrations"
	"github.com/Simplici0/printquote/internal/seed"
	"github.com/Simplici0/printquote/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read config: %v\n", err)
		os.Exit(1)
	}

	log := setupLogger(cfg.Env)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped")
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	applied, err := migrations.Up(ctx, database)
	if err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	log.Debug("migrations applied", slog.Int("count", applied))

	stats, err := seed.Run(ctx, database, seed.Config{CatalogPath: cfg.SeedCatalogPath})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	log.Debug("seed completed", slog.Int("inserts", stats.Inserts))

	st := storage.New(database)
	state, ok, err := st.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load budget state: %w", err)
	}
	if !ok {
		state = budget.DefaultState()
	}

	srv := newServer(budget.NewStore(state, st, log), st, log)

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.routes(cfg.AllowedOrigins()),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server started", slog.String("address", httpServer.Addr), slog.String("env", cfg.Env))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		log.Info("shutting down server")
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func setupLogger(env string) *slog.Logger {
	level := slog.LevelDebug
	if env == config.EnvProd {
		level = slog.LevelInfo
	}

	var handler slog.Handler
	switch env {
	case config.EnvDev:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
