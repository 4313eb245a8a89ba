package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/eventdesk/eventdesk/config"
	httpx "github.com/eventdesk/eventdesk/internal/http"
)

// buildHTTPHandler assembles the router with its middleware chain.
// Order: Recover -> Logging -> RequestID -> Router.
func buildHTTPHandler(svcs *Services, logger *slog.Logger) http.Handler {
	router := httpx.NewRouter(httpx.RouterServices{
		Events: svcs.Events,
		Auth:   svcs.Directory,
		Tokens: svcs.Tokens,
		Logger: logger,
	})

	h := httpx.RequestID()(router)
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)
	return h
}

// ServeHTTP runs the portal's HTTP server until ctx is canceled, then shuts
// it down gracefully within the configured timeout.
func ServeHTTP(ctx context.Context, cfg *config.AppConfig, svcs *Services, logger *slog.Logger) error {
	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      buildHTTPHandler(svcs, logger),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}
