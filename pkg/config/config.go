// Package config loads editor configuration from an optional YAML file with
// environment-variable overrides, and wires the configured store and backend
// provider.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/docylit/docylit/pkg/assist"
	"github.com/docylit/docylit/pkg/assist/gemini"
	"github.com/docylit/docylit/pkg/assist/openai"
	"github.com/docylit/docylit/pkg/store"
	redisstore "github.com/docylit/docylit/pkg/store/redis"
	"github.com/docylit/docylit/pkg/store/sqlite"
)

// Config is the full editor configuration.
type Config struct {
	// Provider selects the AI backend: "gemini" (default) or "openai".
	Provider string `yaml:"provider"`
	// Model is the backend model identifier.
	Model string `yaml:"model"`
	// APIKey is the backend credential. Usually supplied via environment.
	APIKey string `yaml:"api_key"`
	// BaseURL overrides the OpenAI-compatible endpoint. Ignored for gemini.
	BaseURL string `yaml:"base_url"`

	// Store selects the persistence driver: "sqlite" (default) or "redis".
	Store string `yaml:"store"`
	// DBPath is the SQLite database path.
	DBPath string `yaml:"db_path"`
	// RedisURL is the Redis connection URL.
	RedisURL string `yaml:"redis_url"`

	// Temperature is the single-shot generation temperature.
	Temperature float32 `yaml:"temperature"`
	// DebounceMillis is the autosave debounce interval in milliseconds.
	DebounceMillis int `yaml:"debounce_millis"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() Config {
	return Config{
		Provider:       "gemini",
		Model:          assist.DefaultModel,
		Store:          "sqlite",
		DBPath:         "docylit.db",
		Temperature:    assist.DefaultTemperature,
		DebounceMillis: 1000,
	}
}

// Load reads the YAML file at path, falling back to defaults when the file
// does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Missing config file is fine; environment and defaults apply.
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// FromEnv returns the default configuration with environment overrides
// applied, for embedders that do not ship a config file.
func FromEnv() Config {
	cfg := Default()
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" && c.Provider != "openai" {
		c.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.Provider == "openai" {
		c.APIKey = v
	}
	if v := os.Getenv("DOCYLIT_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("DOCYLIT_DB"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("DOCYLIT_REDIS_URL"); v != "" {
		c.RedisURL = v
		c.Store = "redis"
	}
	if v := os.Getenv("DOCYLIT_DEBOUNCE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			c.DebounceMillis = ms
		}
	}
}

// Debounce returns the debounce interval as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMillis) * time.Millisecond
}

// OpenStore opens the configured persistence driver.
func (c Config) OpenStore(ctx context.Context) (store.DocumentStore, error) {
	switch c.Store {
	case "", "sqlite":
		return sqlite.New(c.DBPath)
	case "redis":
		return redisstore.New(c.RedisURL)
	default:
		return nil, fmt.Errorf("unknown store driver: %q", c.Store)
	}
}

// NewProvider constructs the configured AI backend provider. A missing API
// key fails fast with assist.ErrMissingAPIKey.
func (c Config) NewProvider(ctx context.Context) (assist.Provider, error) {
	switch c.Provider {
	case "", "gemini":
		return gemini.New(ctx, c.APIKey)
	case "openai":
		return openai.New(c.APIKey, c.BaseURL)
	default:
		return nil, fmt.Errorf("unknown provider: %q", c.Provider)
	}
}
