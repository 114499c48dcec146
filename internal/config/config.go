package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

const (
	promptsFile    = "prompts.txt"
	categoriesFile = "categories.json"
	previewDirName = "preview_images"
)

// Config holds all configuration for the application.
type Config struct {
	DataDir     string     `env:"DATA_DIR" envDefault:"./data"`
	RoutePrefix string     `env:"ROUTE_PREFIX" envDefault:"/prompt_manager"`
	APIPort     string     `env:"API_PORT" envDefault:"8188"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string     `env:"LOG_FORMAT" envDefault:"text"`
	MaxUploadMB int64      `env:"MAX_UPLOAD_MB" envDefault:"32"`
}

// Load reads configuration from environment variables and returns a Config struct.
// If a .env file exists in the current directory or one of its parents, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
// The data and preview directories are created if missing.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.PreviewDir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads the nearest .env file, searching upward from the working directory.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

func (c *Config) validate() error {
	c.DataDir = strings.TrimSpace(c.DataDir)
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}

	if err := ValidatePort(c.APIPort); err != nil {
		return fmt.Errorf("API_PORT %w", err)
	}

	if !strings.HasPrefix(c.RoutePrefix, "/") {
		return fmt.Errorf("ROUTE_PREFIX must start with '/'")
	}
	c.RoutePrefix = strings.TrimRight(c.RoutePrefix, "/")
	if c.RoutePrefix == "" {
		return fmt.Errorf("ROUTE_PREFIX must not be the root path")
	}

	c.LogFormat = strings.ToLower(c.LogFormat)
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}

	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be greater than 0")
	}
	return nil
}

// ValidatePort checks that port is a TCP port number.
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("must be a valid integer: %w", err)
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("must be between 1 and 65535, got %d", n)
	}
	return nil
}

// PromptsPath is the location of the prompt list file.
func (c *Config) PromptsPath() string {
	return filepath.Join(c.DataDir, promptsFile)
}

// CategoriesPath is the location of the category vocabulary file.
func (c *Config) CategoriesPath() string {
	return filepath.Join(c.DataDir, categoriesFile)
}

// PreviewDir is the directory holding uploaded preview images.
func (c *Config) PreviewDir() string {
	return filepath.Join(c.DataDir, previewDirName)
}

// MaxUploadBytes is the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// Addr is the listen address of the standalone server.
func (c *Config) Addr() string {
	return ":" + c.APIPort
}
