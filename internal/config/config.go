// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/resume-builder/internal/persist"
	"go.uber.org/zap/zapcore"
)

// Storage backends
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or come from CLI flags
// and the environment.
type Config struct {
	// Storage
	Storage     string `json:"storage,omitempty"`      // file, memory, postgres or redis
	StorageDir  string `json:"storage_dir,omitempty"`  // Directory for the file backend
	StorageKey  string `json:"storage_key,omitempty"`  // Key the draft is stored under
	AutosaveMS  int    `json:"autosave_ms,omitempty"`  // Autosave quiet period in milliseconds
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string `json:"redis_url,omitempty"`    // Redis connection URL

	// Export
	ChromePath string `json:"chrome_path,omitempty"` // Chrome/Chromium binary for exports
	OutputDir  string `json:"output_dir,omitempty"`  // Where exports are written

	// Behavior
	Verbose  bool   `json:"verbose,omitempty"`   // Print detailed debug information
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn or error
}

// Environment variables read by ApplyEnv
const (
	EnvStorage     = "RESUME_STORAGE"
	EnvStorageDir  = "RESUME_STORAGE_DIR"
	EnvStorageKey  = "RESUME_STORAGE_KEY"
	EnvAutosaveMS  = "RESUME_AUTOSAVE_MS"
	EnvDatabaseURL = "DATABASE_URL"
	EnvRedisURL    = "REDIS_URL"
	EnvChromePath  = "CHROME_PATH"
	EnvOutputDir   = "RESUME_OUTPUT_DIR"
)

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Storage:    StorageFile,
		StorageDir: DefaultStorageDir(),
		StorageKey: persist.DefaultKey,
		AutosaveMS: int(persist.DefaultDelay / time.Millisecond),
		OutputDir:  ".",
		LogLevel:   "warn",
	}
}

// DefaultStorageDir is resume-builder under the user config directory, or
// .resume-builder in the working directory when that is unknown.
func DefaultStorageDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".resume-builder"
	}
	return filepath.Join(dir, "resume-builder")
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields with the environment variables that are set.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	fields := []struct {
		name string
		dst  *string
	}{
		{EnvStorage, &c.Storage},
		{EnvStorageDir, &c.StorageDir},
		{EnvStorageKey, &c.StorageKey},
		{EnvDatabaseURL, &c.DatabaseURL},
		{EnvRedisURL, &c.RedisURL},
		{EnvChromePath, &c.ChromePath},
		{EnvOutputDir, &c.OutputDir},
	}
	for _, s := range fields {
		if v, ok := lookup(s.name); ok && v != "" {
			*s.dst = v
		}
	}

	if v, ok := lookup(EnvAutosaveMS); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", EnvAutosaveMS, err)
		}
		c.AutosaveMS = ms
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Storage {
	case "", StorageFile, StorageMemory:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for postgres storage")
		}
	case StorageRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("config error: 'redis_url' is required for redis storage")
		}
	default:
		return fmt.Errorf("config error: unknown storage %q (want file, memory, postgres or redis)", c.Storage)
	}

	if c.AutosaveMS < 0 {
		return fmt.Errorf("config error: 'autosave_ms' must be non-negative")
	}

	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: invalid 'log_level': %w", err)
		}
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// AutosaveDelay is AutosaveMS as a duration.
func (c *Config) AutosaveDelay() time.Duration {
	return time.Duration(c.AutosaveMS) * time.Millisecond
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Storage == "" {
		result.Storage = defaults.Storage
	}
	if result.StorageDir == "" {
		result.StorageDir = defaults.StorageDir
	}
	if result.StorageKey == "" {
		result.StorageKey = defaults.StorageKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Int fields: use default if zero
	if result.AutosaveMS == 0 {
		result.AutosaveMS = defaults.AutosaveMS
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
