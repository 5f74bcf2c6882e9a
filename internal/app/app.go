// Package app wires configuration, storage, the model client, services, and
// the HTTP transport together and runs the server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/journai/journai-backend/internal/adapter/anthropic"
	"github.com/journai/journai-backend/internal/adapter/postgres"
	"github.com/journai/journai-backend/internal/adapter/postgres/entry"
	"github.com/journai/journai-backend/internal/config"
	"github.com/journai/journai-backend/internal/service/journal"
	"github.com/journai/journai-backend/internal/transport/middleware"
	"github.com/journai/journai-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, applies
// migrations, wires the journal service onto the HTTP transport, and serves
// until the context is cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	// Local development convenience; in production variables come from the
	// environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate(ctx, cfg.Database.DSN); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	llm := anthropic.NewClient(cfg.LLM)
	entries := entry.New(pool)
	journalSvc := journal.NewService(logger, entries, llm)

	journalHandler := rest.NewJournalHandler(logger, journalSvc)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(rest.NewRouter(journalHandler, healthHandler))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")

	return nil
}
