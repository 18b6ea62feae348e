// Package config provides configuration loading and validation for the
// Whatsafe service. Values come from defaults, an optional config.yaml, and
// WHATSAFE_-prefixed environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/whatsafe/whatsafe/internal/detector"
)

// Config defines the application configuration for all components: logging,
// the HTTP server, the analysis engine, and the Gemini-backed alternate
// analysis path.
type Config struct {
	Log      LogConfig       `mapstructure:"log"`
	Server   ServerConfig    `mapstructure:"server"`
	Detector detector.Config `mapstructure:"detector"`
	Gemini   GeminiConfig    `mapstructure:"gemini"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json text"`
}

// ServerConfig controls the HTTP surface. MaxBodyBytes caps transcript
// uploads before they reach the engine; the engine itself imposes no bound.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"             validate:"required"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"   validate:"min=1024"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"min=1s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"min=1s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=1s"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

// GeminiConfig controls the alternate LLM analysis path. An empty APIKey
// disables the path; the server then reports it as unavailable rather than
// failing startup.
type GeminiConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	ModelName         string        `mapstructure:"model_name"          validate:"required"`
	Temperature       float32       `mapstructure:"temperature"         validate:"min=0,max=2"`
	Timeout           time.Duration `mapstructure:"timeout"             validate:"min=1s,max=10m"`
	MaxRetries        int           `mapstructure:"max_retries"         validate:"min=0,max=10"`
	RetryDelaySeconds int           `mapstructure:"retry_delay_seconds" validate:"min=0,max=60"`
}

// Load reads configuration from the given path, applies defaults and
// environment overrides, and validates the result. A missing config file is
// not an error; defaults and environment variables cover every field.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("WHATSAFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
