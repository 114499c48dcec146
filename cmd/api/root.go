package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"prompt-manager/internal/config"
	"prompt-manager/internal/service"
	"prompt-manager/internal/storage"
)

var (
	cfg     *config.Config
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "prompt-manager",
	Short: "Prompt library backend with categories and preview images",
	Long: `prompt-manager keeps a list of text prompts in a pipe-delimited prompts.txt,
a category vocabulary in categories.json and preview images in preview_images/.

It serves a JSON API for the browser UI and exposes a passthrough node
that forwards the selected prompts unchanged.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == versionCmd.Name() {
			return nil
		}

		// The flag wins over the environment and .env.
		if dataDir != "" {
			if err := os.Setenv("DATA_DIR", dataDir); err != nil {
				return err
			}
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		setupLogging(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&dataDir, "data-dir", "", "directory holding prompts.txt, categories.json and preview_images (default: $DATA_DIR or ./data)",
	)
}

// setupLogging configures the default slog logger from the loaded configuration.
func setupLogging(cfg *config.Config) {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)
}

// newStores opens the file-backed stores under the configured data directory.
func newStores(cfg *config.Config) *service.Stores {
	return service.NewStores(
		storage.NewPromptRepo(cfg.PromptsPath()),
		storage.NewCategoryRepo(cfg.CategoriesPath()),
		storage.NewImageRepo(cfg.PreviewDir()),
	)
}
