package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageDriverMemory = "memory"
	StorageDriverSQLite = "sqlite"
)

type Config struct {
	App     AppConfig
	Log     LogConfig
	Storage StorageConfig
	Metrics MetricsConfig
	CLI     CLIConfig
}

type AppConfig struct {
	Environment string
}

type LogConfig struct {
	Level  string
	Format string
}

type StorageConfig struct {
	Driver string
	DSN    string
}

type MetricsConfig struct {
	Enabled bool
}

type CLIConfig struct {
	MaxRetries int
}

// Load reads configuration from the environment, after merging a .env file
// from the working directory when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverMemory)),
			DSN:    getEnv("SQLITE_DSN", "file::memory:?cache=shared"),
		},
		Metrics: MetricsConfig{
			Enabled: getBoolEnv("METRICS_ENABLED", true),
		},
		CLI: CLIConfig{
			MaxRetries: getIntEnv("CLI_MAX_RETRIES", 3),
		},
	}
}

// Validate checks the values Load cannot repair with a default
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverSQLite:
		// State must not outlive the process.
		if !strings.Contains(c.Storage.DSN, ":memory:") {
			return fmt.Errorf("SQLITE_DSN must be an in-memory database, got %q", c.Storage.DSN)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.CLI.MaxRetries < 1 {
		return fmt.Errorf("CLI_MAX_RETRIES must be at least 1, got %d", c.CLI.MaxRetries)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown LOG_FORMAT %q", c.Log.Format)
	}

	return nil
}

// SlogLevel maps Log.Level onto a slog level; unknown names fall back to warn
func (c *LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
