package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

var (
	errUnsupportedFormat = errors.New("unsupported output format")
	errUnsupportedLevel  = errors.New("unsupported log level")
)

// Config is the configuration of the card_brand driver.
type Config struct {
	// Format is one of text, table or json.
	Format string
	// Mask prints masked numbers instead of the raw input.
	Mask bool
	// Lang is a BCP 47 tag used for the unknown-brand label (e.g. "pt-BR", "en").
	Lang     string
	LogLevel string
}

func DefaultConfig() *Config {
	return &Config{
		Format:   "text",
		Lang:     "pt-BR",
		LogLevel: "info",
	}
}

func (c *Config) Validate() error {
	switch c.Format {
	case "text", "table", "json":
	default:
		return fmt.Errorf("%w: %q", errUnsupportedFormat, c.Format)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", errUnsupportedLevel, s)
}

// loadEnvFile loads KEY=VALUE pairs without overriding variables already set.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
