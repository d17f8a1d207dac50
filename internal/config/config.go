package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Progress ProgressConfig `mapstructure:"progress" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Speech   SpeechConfig   `mapstructure:"speech"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// ProgressConfig contains the drill progression policy settings.
type ProgressConfig struct {
	// TimeZone is the IANA name of the reference zone for the daily
	// completion lock, e.g. "Europe/Madrid" or "UTC".
	TimeZone string `mapstructure:"time_zone" validate:"required"`

	// PracticeAwardsPoints extends mastery points to ungraded practice runs.
	PracticeAwardsPoints bool `mapstructure:"practice_awards_points"`
}

// LLMConfig contains all LLM integration related settings. The API key is
// optional: without it the suggestion endpoints are disabled rather than
// the whole server refusing to start.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key"`
	ModelName         string `mapstructure:"model_name"`
	MaxRetries        int    `mapstructure:"max_retries" validate:"gte=0"`
	RetryDelaySeconds int    `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// SpeechConfig contains text-to-speech settings. Synthesis is optional in
// the same way the LLM integration is.
type SpeechConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	LanguageCode string `mapstructure:"language_code"`
}
