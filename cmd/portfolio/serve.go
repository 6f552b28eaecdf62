package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"akellar.dev/internal/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		site, store, watchPath := siteSources(cfg, logger)

		if cfg.Watch {
			if watchPath == "" {
				logger.Warn("Catalog watching requested but the catalog is not a local file")
			} else {
				go func() {
					if err := store.Watch(ctx, watchPath); err != nil {
						logger.Error("Catalog watcher stopped", zap.Error(err))
					}
				}()
			}
		}

		srv := &http.Server{
			Addr:              cfg.ServerAddr,
			Handler:           handlers.SetupRoutes(cfg, site, store, logger),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Server listening", zap.String("addr", cfg.ServerAddr))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
