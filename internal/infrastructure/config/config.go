// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for ttsync configuration.
	DefaultConfigDir = ".ttsync"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultSnapshotDB is the default SQLite snapshot database file name.
	DefaultSnapshotDB = "snapshots.db"
	// DefaultBaseURL is the default timetable backend address.
	DefaultBaseURL = "http://localhost:8000"
)

// Storage drivers for the snapshot key-value store.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	API     APIConfig     `yaml:"api,omitempty"`
	Storage StorageConfig `yaml:"storage,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// APIConfig holds configuration for the timetable backend.
type APIConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
	// Token is a bearer token used as-is. TokenFile is read on every request,
	// so a token refreshed on disk is picked up without a restart.
	Token     string `yaml:"token,omitempty"`
	TokenFile string `yaml:"token_file,omitempty"`
}

// StorageConfig selects and configures the snapshot backend.
type StorageConfig struct {
	Driver string       `yaml:"driver,omitempty"`
	SQLite SQLiteConfig `yaml:"sqlite,omitempty"`
	Redis  RedisConfig  `yaml:"redis,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite snapshot database.
type SQLiteConfig struct {
	// Path is relative to the project directory unless absolute.
	Path string `yaml:"path,omitempty"`
}

// RedisConfig holds configuration for the Redis snapshot backend.
type RedisConfig struct {
	Addr     string `yaml:"addr,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
		},
		Storage: StorageConfig{
			Driver: DriverSQLite,
			SQLite: SQLiteConfig{
				Path: filepath.Join(DefaultConfigDir, DefaultSnapshotDB),
			},
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "ttsync:",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from the .ttsync directory in the given path.
// A missing config file yields the defaults with environment overrides applied.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TTSYNC_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("TTSYNC_TOKEN"); v != "" {
		c.API.Token = v
	}
	if v := os.Getenv("TTSYNC_STORAGE"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Storage.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		if c.Storage.Redis.Password == "" {
			c.Storage.Redis.Password = v
		}
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			c.Storage.Redis.DB = db
		}
	}
	if v := os.Getenv("TTSYNC_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Validate checks values that would otherwise fail late and obscurely.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q: must be an absolute http(s) URL", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api.base_url %q: scheme must be http or https", c.API.BaseURL)
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Storage.SQLite.Path) == "" {
			return errors.New("storage.sqlite.path is required")
		}
	case DriverRedis:
		if strings.TrimSpace(c.Storage.Redis.Addr) == "" {
			return errors.New("storage.redis.addr is required")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q: must be %s or %s", c.Storage.Driver, DriverSQLite, DriverRedis)
	}

	return nil
}

// SQLitePath resolves the snapshot database path against basePath.
func (c *Config) SQLitePath(basePath string) string {
	if filepath.IsAbs(c.Storage.SQLite.Path) {
		return c.Storage.SQLite.Path
	}
	return filepath.Join(basePath, c.Storage.SQLite.Path)
}

// ConfigDir returns the path to the .ttsync config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a ttsync config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
