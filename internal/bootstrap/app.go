package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
	"github.com/yanqian/styling-advisor/internal/infra/config"
)

const shutdownTimeout = 10 * time.Second

// App holds the wired advisor and the HTTP server that exposes it.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *http.Server
	advisor styling.Service
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, advisor styling.Service) *App {
	return &App{
		cfg:     cfg,
		logger:  logger.With("component", "bootstrap"),
		server:  server,
		advisor: advisor,
	}
}

// Advisor exposes the styling service to non-HTTP presentations.
func (a *App) Advisor() styling.Service {
	return a.advisor
}

// Run starts the HTTP server and blocks until ctx is cancelled or the server fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.server.Addr, "storage", a.cfg.Storage.Driver)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutdown signal received")
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
