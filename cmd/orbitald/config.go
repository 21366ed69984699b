package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level orbitald configuration, loaded from a YAML file
// plus ORBITALD_-prefixed environment overrides.
type Config struct {
	Display    DisplayConfig    `mapstructure:"display"`
	Background BackgroundConfig `mapstructure:"background"`
	Decoration DecorationConfig `mapstructure:"decoration"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// DisplayConfig sizes the framebuffer the loopback Display renders into.
type DisplayConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// BackgroundConfig configures background.Load and background.NewWatcher.
type BackgroundConfig struct {
	Paths        []string `mapstructure:"paths"`
	Mode         string   `mapstructure:"mode"`
	WatchReloads bool     `mapstructure:"watch_reloads"`
}

// DecorationConfig points at the chrome and cursor assets decor.Load reads.
type DecorationConfig struct {
	CloseFocused   string `mapstructure:"close_focused"`
	CloseUnfocused string `mapstructure:"close_unfocused"`
	Minimize       string `mapstructure:"minimize"`
	Cursor         string `mapstructure:"cursor"`
}

// LoggingConfig configures the zap core and its lumberjack-rotated sink.
type LoggingConfig struct {
	Level      string        `mapstructure:"level"`
	File       string        `mapstructure:"file"`
	MaxSizeMB  int           `mapstructure:"max_size_mb"`
	MaxBackups int           `mapstructure:"max_backups"`
	MaxAge     time.Duration `mapstructure:"max_age"`
	Compress   bool          `mapstructure:"compress"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("display.width", 1024)
	v.SetDefault("display.height", 768)
	v.SetDefault("background.mode", "zoom")
	v.SetDefault("background.watch_reloads", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 168*time.Hour)
	v.SetDefault("logging.compress", true)
}

// LoadConfig reads orbitald's configuration from path, falling back to
// built-in defaults for anything the file and environment leave unset. A
// missing file is not an error: a fresh install runs on defaults alone.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	defaults(v)

	v.SetEnvPrefix("ORBITALD")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("orbitald: reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("orbitald: decoding config: %w", err)
	}
	return cfg, nil
}
