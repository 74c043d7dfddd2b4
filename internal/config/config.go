// ABOUTME: healthflow configuration management with backend selection.
// ABOUTME: Handles the JSON config file, env overrides and the storage factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/harperreed/healthflow/internal/logger"
	"github.com/harperreed/healthflow/internal/storage"
)

// Defaults applied when a field is unset.
const (
	DefaultBackend    = "sqlite"
	DefaultAPIBaseURL = "http://localhost:5001/api"
	DefaultTimeout    = 60 * time.Second
	DefaultRedisURL   = "redis://localhost:6379/0"
)

// Environment variables that override the config file.
const (
	EnvBackend        = "HEALTHFLOW_BACKEND"
	EnvDataDir        = "HEALTHFLOW_DATA_DIR"
	EnvRedisURL       = "HEALTHFLOW_REDIS_URL"
	EnvAPIBase        = "HEALTHFLOW_API_BASE"
	EnvTimeoutSeconds = "HEALTHFLOW_TIMEOUT_SECONDS"
	EnvLogMode        = "HEALTHFLOW_LOG_MODE"
)

// Config stores healthflow configuration.
type Config struct {
	// Backend selects the storage medium: "sqlite" (default), "badger",
	// "redis" or "memory".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// SQLite puts healthflow.db here. Badger uses a badger/ subdirectory.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/healthflow.
	DataDir string `json:"data_dir,omitempty"`

	// RedisURL is used by the redis backend.
	RedisURL string `json:"redis_url,omitempty"`

	// APIBaseURL is the AI backend root, e.g. http://localhost:5001/api.
	APIBaseURL string `json:"api_base_url,omitempty"`

	// TimeoutSeconds bounds each AI backend call.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`

	// LogMode is passed to logger.New: "dev", "quiet" or "prod".
	LogMode string `json:"log_mode,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return DefaultBackend
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetRedisURL returns the redis URL, defaulting to a local server.
func (c *Config) GetRedisURL() string {
	if c.RedisURL == "" {
		return DefaultRedisURL
	}
	return c.RedisURL
}

// GetAPIBaseURL returns the AI backend URL without a trailing slash.
func (c *Config) GetAPIBaseURL() string {
	if c.APIBaseURL == "" {
		return DefaultAPIBaseURL
	}
	return strings.TrimRight(c.APIBaseURL, "/")
}

// GetTimeout returns the per-call AI backend timeout.
func (c *Config) GetTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetLogMode returns the logger mode, defaulting to "quiet" so CLI output
// is not interleaved with debug lines.
func (c *Config) GetLogMode() string {
	if c.LogMode == "" {
		return "quiet"
	}
	return c.LogMode
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// ApplyEnv overlays HEALTHFLOW_* environment variables onto c.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		c.RedisURL = v
	}
	if v := os.Getenv(EnvAPIBase); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv(EnvTimeoutSeconds); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvTimeoutSeconds, err)
		}
		c.TimeoutSeconds = secs
	}
	if v := os.Getenv(EnvLogMode); v != "" {
		c.LogMode = v
	}
	return nil
}

// LoadEnv reads .env files into the process environment. Missing files
// are ignored; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage(log *logger.Logger) (storage.Repository, error) {
	kv, err := c.openKV()
	if err != nil {
		return nil, err
	}
	return storage.NewStore(kv, log), nil
}

func (c *Config) openKV() (storage.KV, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case "sqlite":
		return storage.OpenSQLite(filepath.Join(dataDir, "healthflow.db"))
	case "badger":
		return storage.OpenBadger(filepath.Join(dataDir, "badger"))
	case "redis":
		return storage.OpenRedis(c.GetRedisURL(), storage.DefaultRedisPrefix)
	case "memory":
		return storage.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "healthflow", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
