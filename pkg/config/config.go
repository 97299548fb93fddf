// Package config loads process configuration from the environment and the
// storage configuration from its YAML file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// ConfigPath is the storage configuration file.
	ConfigPath string

	// DatabaseURL, when set, replaces the storage URL from the config file.
	DatabaseURL string

	// MaxConns caps the PostgreSQL pool; 0 keeps the driver default.
	MaxConns int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	configPath := os.Getenv("TODO_CONFIG")
	if configPath == "" {
		var err error
		configPath, err = DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		AppEnv:      getEnv("TODO_ENV", "production"),
		LogLevel:    getEnv("TODO_LOG_LEVEL", "warn"),
		LogFormat:   getEnv("TODO_LOG_FORMAT", "text"),
		ConfigPath:  configPath,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		MaxConns:    getIntEnv("TODO_DB_MAX_CONNS", 0),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Storage returns the storage configuration in effect: DATABASE_URL if set,
// otherwise the config file, otherwise the default local file store.
func (c *Config) Storage() (StorageConfig, error) {
	if c.DatabaseURL != "" {
		return NewStorageConfig(c.DatabaseURL)
	}

	sc, err := LoadStorageConfig(c.ConfigPath)
	if err == nil {
		return sc, nil
	}
	if !IsNoConfig(err) {
		return StorageConfig{}, err
	}

	return DefaultStorageConfig()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
