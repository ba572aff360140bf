// Package config loads the ambient, non-domain settings (logging only) a
// stage may optionally override via a YAML file, the same viper-backed
// pattern the teacher repo uses for its own config — scaled down to the
// one concern SPEC_FULL.md's ambient stack calls for. When no config path
// is given, absence of a config file is not an error: every field falls
// back to telemetry.DefaultLogConfig.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

// Logging holds the subset of telemetry.LogConfig a config file may set.
type Logging struct {
	Level      string `mapstructure:"level"`
	LogDir     string `mapstructure:"log_dir"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// Config is the top-level ambient config document.
type Config struct {
	Logging Logging `mapstructure:"logging"`
}

// LoadLogConfig reads an optional config file (searched at configPath if
// given, else "./config.yaml" and "$HOME/.mini-search-engine/config.yaml")
// and merges it over stage's defaults. When configPath is empty, finding
// no config file in either search location is not an error, matching spec
// §6 ("Environment: none required. No configuration files."); an explicit
// configPath that cannot be read is returned as an error.
func LoadLogConfig(stage, configPath string) (telemetry.LogConfig, error) {
	defaults := telemetry.DefaultLogConfig(stage)

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".mini-search-engine"))
		}
	}

	v.SetDefault("logging.level", defaults.Level)
	v.SetDefault("logging.log_dir", defaults.LogDir)
	v.SetDefault("logging.max_size", defaults.MaxSize)
	v.SetDefault("logging.max_backups", defaults.MaxBackups)
	v.SetDefault("logging.max_age", defaults.MaxAge)
	v.SetDefault("logging.compress", defaults.Compress)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return defaults, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, fmt.Errorf("parsing config file: %w", err)
	}

	return telemetry.LogConfig{
		Level:      cfg.Logging.Level,
		LogDir:     cfg.Logging.LogDir,
		LogFile:    defaults.LogFile,
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	}, nil
}
