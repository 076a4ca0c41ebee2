package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the loader reads,
// e.g. ANALYZER_SERVER_PORT for server.port.
const EnvPrefix = "ANALYZER"

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded first when present; a
// config.yaml in the working directory is read when present. Environment
// variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load("")
}

// LoadFile behaves like Load but reads the given YAML file instead of
// searching the working directory. A missing file is an error.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path cannot be empty")
	}
	return load(path)
}

func load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind critical environment variables
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"llm.gemini_api_key",
		"llm.model_name",
		"scoring.default_strategy",
		"digest.enabled",
		"digest.schedule",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.url", "sqlite://task-analyzer.db")

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.request_timeout_seconds", 30)
	v.SetDefault("llm.breaker_failure_threshold", 3)
	v.SetDefault("llm.breaker_cooldown_seconds", 60)

	v.SetDefault("scoring.default_strategy", "smart")
	v.SetDefault("scoring.suggest_limit", 3)

	v.SetDefault("digest.enabled", false)
	v.SetDefault("digest.schedule", "@daily")
	v.SetDefault("digest.limit", 3)
}
