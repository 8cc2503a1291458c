// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel    = "COLOR_MCP_LOG_LEVEL"
	EnvMetricsAddr = "COLOR_MCP_METRICS_ADDR"
	EnvSwatchSize  = "COLOR_MCP_SWATCH_SIZE"
	EnvCacheImages = "COLOR_MCP_CACHE_IMAGES"
)

// DefaultSwatchSize is the swatch edge length used when none is configured.
const DefaultSwatchSize = 64

// Config holds the server settings.
type Config struct {
	LogLevel    string // "info" or "debug"
	MetricsAddr string // host:port for /metrics; empty disables the listener
	SwatchSize  int    // default swatch edge length in pixels
	CacheImages bool   // keep decoded images between tool calls
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		SwatchSize:  DefaultSwatchSize,
		CacheImages: true,
	}
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Variables already set in the environment win over the
// files. A missing .env file is not an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := Default()

	cfg.LogLevel = strings.ToLower(getEnvOrDefault(EnvLogLevel, cfg.LogLevel))
	cfg.MetricsAddr = getEnvOrDefault(EnvMetricsAddr, "")

	if v := os.Getenv(EnvSwatchSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer, got %q", EnvSwatchSize, v)
		}
		cfg.SwatchSize = n
	}

	if v := os.Getenv(EnvCacheImages); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be a boolean, got %q", EnvCacheImages, v)
		}
		cfg.CacheImages = b
	}

	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
