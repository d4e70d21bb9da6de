package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmcdole/popcorn/internal/omdb"
	"github.com/mmcdole/popcorn/internal/store"
)

const envPrefix = "POPCORN"

// Config holds all application configuration
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds movie catalog configuration
type CatalogConfig struct {
	BaseURL       string  `mapstructure:"base_url"`
	APIKey        string  `mapstructure:"api_key"`
	RatePerSecond float64 `mapstructure:"rate_per_second"` // 0 disables client-side limiting
}

// StorageConfig holds persistence configuration
type StorageConfig struct {
	Driver        string `mapstructure:"driver"` // bolt, sqlite, redis, postgres, memory
	Path          string `mapstructure:"path"`   // data directory for file backends
	DSN           string `mapstructure:"dsn"`    // postgres connection string
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	RankResults bool `mapstructure:"rank_results"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:       omdb.DefaultBaseURL,
			RatePerSecond: 5,
		},
		Storage: StorageConfig{
			Driver: store.DriverBolt,
			Path:   defaultDataPath(),
		},
		UI: UIConfig{
			RankResults: false,
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "popcorn.log"),
			Level: "INFO",
		},
	}
}

// StoreConfig converts the storage section for store.Open
func (c *Config) StoreConfig() store.Config {
	return store.Config{
		Driver:        c.Storage.Driver,
		Dir:           expandHome(c.Storage.Path),
		DSN:           c.Storage.DSN,
		RedisAddr:     c.Storage.RedisAddr,
		RedisPassword: c.Storage.RedisPassword,
		RedisDB:       c.Storage.RedisDB,
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "popcorn")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "popcorn")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "popcorn")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "popcorn")
	}
}

// DefaultConfigFile returns the config file written by SaveConfig
func DefaultConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("catalog.base_url", cfg.Catalog.BaseURL)
	v.SetDefault("catalog.api_key", cfg.Catalog.APIKey)
	v.SetDefault("catalog.rate_per_second", cfg.Catalog.RatePerSecond)

	v.SetDefault("storage.driver", cfg.Storage.Driver)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("storage.dsn", cfg.Storage.DSN)
	v.SetDefault("storage.redis_addr", cfg.Storage.RedisAddr)
	v.SetDefault("storage.redis_password", cfg.Storage.RedisPassword)
	v.SetDefault("storage.redis_db", cfg.Storage.RedisDB)

	v.SetDefault("ui.rank_results", cfg.UI.RankResults)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	return v
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := DefaultConfig()
	v := newViper(cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides, e.g. POPCORN_CATALOG_API_KEY
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(path != "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes cfg to path, or to the default config file when path is empty
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		path = DefaultConfigFile()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("catalog.base_url", cfg.Catalog.BaseURL)
	v.Set("catalog.api_key", cfg.Catalog.APIKey)
	v.Set("catalog.rate_per_second", cfg.Catalog.RatePerSecond)

	v.Set("storage.driver", cfg.Storage.Driver)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("storage.dsn", cfg.Storage.DSN)
	v.Set("storage.redis_addr", cfg.Storage.RedisAddr)
	v.Set("storage.redis_password", cfg.Storage.RedisPassword)
	v.Set("storage.redis_db", cfg.Storage.RedisDB)

	v.Set("ui.rank_results", cfg.UI.RankResults)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if a catalog API key is set
func (c *Config) IsConfigured() bool {
	return strings.TrimSpace(c.Catalog.APIKey) != ""
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
