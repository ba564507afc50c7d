package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/persist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"storage": "redis",
		"redis_url": "redis://localhost:6379/0",
		"storage_key": "draft",
		"autosave_ms": 250,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "draft", cfg.StorageKey)
	assert.Equal(t, 250*time.Millisecond, cfg.AutosaveDelay())
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero value", Config{}, ""},
		{"defaults", Defaults(), ""},
		{"memory", Config{Storage: StorageMemory}, ""},
		{"postgres", Config{Storage: StoragePostgres, DatabaseURL: "postgres://localhost/resume"}, ""},
		{"postgres without url", Config{Storage: StoragePostgres}, "database_url"},
		{"redis without url", Config{Storage: StorageRedis}, "redis_url"},
		{"unknown storage", Config{Storage: "s3"}, `unknown storage "s3"`},
		{"negative autosave", Config{AutosaveMS: -1}, "autosave_ms"},
		{"bad log level", Config{LogLevel: "loud"}, "log_level"},
		{"missing chrome", Config{ChromePath: "/nonexistent/chrome"}, "chrome binary not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvStorage:     "postgres",
		EnvDatabaseURL: "postgres://db/resume",
		EnvAutosaveMS:  "1000",
		EnvChromePath:  "",
		EnvOutputDir:   "out",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	cfg := Config{Storage: StorageFile, ChromePath: "/usr/bin/chromium", StorageKey: "k"}
	require.NoError(t, cfg.ApplyEnv(lookup))

	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "postgres://db/resume", cfg.DatabaseURL)
	assert.Equal(t, 1000, cfg.AutosaveMS)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, "/usr/bin/chromium", cfg.ChromePath, "empty variables are ignored")
	assert.Equal(t, "k", cfg.StorageKey)
}

func TestApplyEnv_BadAutosave(t *testing.T) {
	cfg := Config{}
	err := cfg.ApplyEnv(func(name string) (string, bool) {
		if name == EnvAutosaveMS {
			return "soon", true
		}
		return "", false
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAutosaveMS)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, StorageFile, d.Storage)
	assert.Equal(t, persist.DefaultKey, d.StorageKey)
	assert.Equal(t, persist.DefaultDelay, d.AutosaveDelay())
	assert.NotEmpty(t, d.StorageDir)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Defaults()

	partial := Config{
		Storage:  StorageMemory,
		LogLevel: "debug",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, StorageMemory, merged.Storage)
	assert.Equal(t, "debug", merged.LogLevel)

	// Default values should fill in empty fields
	assert.Equal(t, defaults.StorageDir, merged.StorageDir)
	assert.Equal(t, defaults.StorageKey, merged.StorageKey)
	assert.Equal(t, defaults.AutosaveMS, merged.AutosaveMS)
	assert.Equal(t, ".", merged.OutputDir)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Storage:    StorageFile,
		StorageDir: "/tmp/drafts",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, StorageFile, merged.Storage)
	assert.Equal(t, "/tmp/drafts", merged.StorageDir)
	assert.Empty(t, merged.LogLevel)
}
