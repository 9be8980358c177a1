// Package config provides Viper-based hierarchical configuration management
// for the library and its CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"pfischer/moneymoney/internal/logging"
)

var envOnce sync.Once

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Query struct {
		// DefaultAgeDays is the transaction look-back window applied when a
		// query specifies neither an age nor a start date.
		DefaultAgeDays int `mapstructure:"default_age_days" yaml:"default_age_days"`
	} `mapstructure:"query" yaml:"query"`

	AppleScript struct {
		Binary         string `mapstructure:"binary" yaml:"binary"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"applescript" yaml:"applescript"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// Load initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then MONEYMONEY_* environment
// variables.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.moneymoney")
	v.AddConfigPath(".moneymoney")
	v.AddConfigPath(".")

	v.SetEnvPrefix("MONEYMONEY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("query.default_age_days", 90)
	v.SetDefault("applescript.binary", "/usr/bin/osascript")
	v.SetDefault("applescript.timeout_seconds", 60)
	v.SetDefault("csv.delimiter", ",")
}

// LoadEnv loads environment variables from a .env file if one exists in the
// current or parent directory. It runs at most once per process.
func LoadEnv() {
	envOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		if err := godotenv.Load(envFile); err != nil {
			logging.Default().WithError(err).Warn("failed to load .env file")
		}
	})
}

// ConfigureLogging builds the process logger from the loaded configuration
// and installs it as the shared default.
func ConfigureLogging(cfg *Config) logging.Logger {
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	logging.SetDefault(logger)
	return logger
}
