package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/artpar/cci-validate/internal/engine"
	"github.com/spf13/viper"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds the deployment action inputs and logging configuration.
type Config struct {
	AccessKey  string    `mapstructure:"access_key"`
	SecretKey  string    `mapstructure:"secret_key"`
	ProjectID  string    `mapstructure:"project_id"`
	Region     string    `mapstructure:"region"`
	Namespace  string    `mapstructure:"namespace"`
	Deployment string    `mapstructure:"deployment"`
	Manifest   string    `mapstructure:"manifest"`
	Image      string    `mapstructure:"image"`
	Log        LogConfig `mapstructure:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Inputs returns the action parameters to validate.
func (c *Config) Inputs() engine.Inputs {
	return engine.Inputs{
		AccessKey:  c.AccessKey,
		SecretKey:  c.SecretKey,
		ProjectID:  c.ProjectID,
		Region:     c.Region,
		Namespace:  c.Namespace,
		Deployment: c.Deployment,
		Manifest:   c.Manifest,
		Image:      c.Image,
	}
}

// =============================================================================
// Config Loading
// =============================================================================

// inputKeys are bound to environment variables so they are picked up
// even when no config file mentions them.
var inputKeys = []string{
	"access_key",
	"secret_key",
	"project_id",
	"region",
	"namespace",
	"deployment",
	"manifest",
	"image",
}

// LoadConfig loads configuration from file and environment.
// Environment variables use the INPUT_ prefix, e.g. INPUT_PROJECT_ID.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			// Only return error if file was explicitly specified and is invalid
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("INPUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range inputKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format.
func SetupLogger(cfg *Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
