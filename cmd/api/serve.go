package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	"github.com/spf13/cobra"

	"prompt-manager/internal/config"
	"prompt-manager/internal/http"
	"prompt-manager/internal/node"
	"prompt-manager/internal/service"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the prompt manager HTTP server.

All routes are mounted under ROUTE_PREFIX (default /prompt_manager):
  GET    /prompts, /categories, /image/{filename}, /images/orphans, /health, /node
  POST   /add, /update, /save, /categories/add, /upload_image, /node/process
  DELETE /delete, /categories/delete, /image/delete

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			if err := config.ValidatePort(servePort); err != nil {
				return fmt.Errorf("invalid --port: %w", err)
			}
			cfg.APIPort = servePort
		}
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "port to listen on (default: $API_PORT or 8188)")

	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	stores := newStores(cfg)

	deps := &http.Deps{
		Prompts:        service.NewPromptService(stores),
		Categories:     service.NewCategoryService(stores),
		Images:         service.NewImageService(stores),
		Node:           node.New(),
		DataDir:        cfg.DataDir,
		PreviewDir:     cfg.PreviewDir(),
		Prefix:         cfg.RoutePrefix,
		MaxUploadBytes: cfg.MaxUploadBytes(),
	}

	srv := &nethttp.Server{
		Addr:              cfg.Addr(),
		Handler:           http.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", srv.Addr, "prefix", cfg.RoutePrefix, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
