package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "LOG_FORMAT", "STORAGE_DRIVER", "SQLITE_DSN", "METRICS_ENABLED", "CLI_MAX_RETRIES"} {
		s.T().Setenv(key, "")
	}

	cfg := Load()

	s.Equal("development", cfg.App.Environment)
	s.Equal("warn", cfg.Log.Level)
	s.Equal("text", cfg.Log.Format)
	s.Equal(StorageDriverMemory, cfg.Storage.Driver)
	s.True(cfg.Metrics.Enabled)
	s.Equal(3, cfg.CLI.MaxRetries)
	s.True(cfg.IsDevelopment())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoad_FromEnvironment() {
	s.T().Setenv("APP_ENV", "testing")
	s.T().Setenv("LOG_LEVEL", "debug")
	s.T().Setenv("LOG_FORMAT", "json")
	s.T().Setenv("STORAGE_DRIVER", "SQLite")
	s.T().Setenv("SQLITE_DSN", "file:bank?mode=memory&cache=shared&_fk=1&x=:memory:")
	s.T().Setenv("METRICS_ENABLED", "false")
	s.T().Setenv("CLI_MAX_RETRIES", "5")

	cfg := Load()

	s.Equal("testing", cfg.App.Environment)
	s.False(cfg.IsDevelopment())
	s.Equal(slog.LevelDebug, cfg.Log.SlogLevel())
	s.Equal("json", cfg.Log.Format)
	s.Equal(StorageDriverSQLite, cfg.Storage.Driver)
	s.False(cfg.Metrics.Enabled)
	s.Equal(5, cfg.CLI.MaxRetries)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoad_InvalidNumbersFallBack() {
	s.T().Setenv("CLI_MAX_RETRIES", "many")
	s.T().Setenv("METRICS_ENABLED", "sometimes")

	cfg := Load()

	s.Equal(3, cfg.CLI.MaxRetries)
	s.True(cfg.Metrics.Enabled)
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Storage.Driver = "postgres" },
			wantErr: "unknown STORAGE_DRIVER",
		},
		{
			name: "on-disk sqlite",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverSQLite
				c.Storage.DSN = "bank.db"
			},
			wantErr: "must be an in-memory database",
		},
		{
			name:    "no retries",
			mutate:  func(c *Config) { c.CLI.MaxRetries = 0 },
			wantErr: "CLI_MAX_RETRIES",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := &Config{
				Log:     LogConfig{Level: "warn", Format: "text"},
				Storage: StorageConfig{Driver: StorageDriverMemory},
				CLI:     CLIConfig{MaxRetries: 3},
			}
			tc.mutate(cfg)

			err := cfg.Validate()
			s.Error(err)
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}

func (s *ConfigTestSuite) TestSlogLevel() {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelWarn,
	}

	for level, want := range testCases {
		cfg := LogConfig{Level: level}
		s.Equal(want, cfg.SlogLevel(), level)
	}
}
