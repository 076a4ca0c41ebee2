package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
	Scoring  ScoringConfig  `mapstructure:"scoring" validate:"required"`
	Digest   DigestConfig   `mapstructure:"digest"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// The URL scheme selects the store: postgres:// or postgresql:// for
// PostgreSQL, sqlite:// or file: for an embedded SQLite database.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// LLMConfig contains all LLM integration related settings.
// An empty GeminiAPIKey disables the AI advisor; requests asking for AI
// analysis then use the built-in engine.
type LLMConfig struct {
	GeminiAPIKey          string `mapstructure:"gemini_api_key"`
	ModelName             string `mapstructure:"model_name" validate:"required"`
	PromptTemplatePath    string `mapstructure:"prompt_template_path"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gt=0"`

	// Circuit breaker around the Gemini call
	BreakerFailureThreshold int `mapstructure:"breaker_failure_threshold" validate:"gte=1"`
	BreakerCooldownSeconds  int `mapstructure:"breaker_cooldown_seconds" validate:"gt=0"`
}

// ScoringConfig contains defaults for the prioritization endpoints.
type ScoringConfig struct {
	DefaultStrategy string `mapstructure:"default_strategy" validate:"required,oneof=smart fastest impact deadline"`
	SuggestLimit    int    `mapstructure:"suggest_limit" validate:"gte=1,lte=100"`
}

// DigestConfig controls the scheduled suggestion digest.
type DigestConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
	Limit    int    `mapstructure:"limit" validate:"gte=1,lte=100"`
}
