package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep local development working with just a database URL set.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("progress.time_zone", "UTC")
	v.SetDefault("progress.practice_awards_points", false)
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("llm.retry_delay_seconds", 2)
	v.SetDefault("speech.enabled", false)
	v.SetDefault("speech.language_code", "es-ES")

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override everything. Nested keys map to
	// underscores: LEXIDRILL_DATABASE_URL -> database.url.
	v.SetEnvPrefix("LEXIDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// validator cannot check IANA zone names, so resolve the zone here and
	// fail fast instead of at the first lock decision.
	if _, err := time.LoadLocation(cfg.Progress.TimeZone); err != nil {
		return nil, fmt.Errorf("invalid progress time zone %q: %w", cfg.Progress.TimeZone, err)
	}

	return &cfg, nil
}
