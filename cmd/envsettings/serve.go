package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sdmc-web/envsettings/internal/api"
	"github.com/sdmc-web/envsettings/internal/config"
)

func newServeCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolved settings over HTTP",
		Long: `Resolves once at startup and serves the result:

  GET /health          liveness
  GET /settings        redacted settings and matched profiles
  GET /hosts/check     ?host=NAME against the trusted host patterns

Requests whose Host header is not trusted are rejected with 400.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.resolve()
			if err != nil {
				return err
			}

			router, err := api.NewRouter(result, c.logger)
			if err != nil {
				return fmt.Errorf("failed to build router: %w", err)
			}

			ln, err := net.Listen("tcp", c.cfg.Server.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", c.cfg.Server.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Handler:           router,
				ReadHeaderTimeout: c.cfg.Server.ReadHeaderTimeout,
			}
			c.logger.Info("settings resolved for serving", "profiles", result.Matched())
			return serveHTTP(ctx, srv, ln, c.cfg.Server.ShutdownTimeout, c.logger)
		},
	}

	cmd.Flags().String("addr", config.DefaultServerAddr, "Listen address")
	return cmd
}

// serveHTTP serves on ln until ctx is done or the server fails, then shuts
// down gracefully within timeout.
func serveHTTP(ctx context.Context, srv *http.Server, ln net.Listener, timeout time.Duration, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			logger.Error("server failed", "error", err)
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("server shutdown completed")
	return nil
}
