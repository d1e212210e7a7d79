package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no Gemini API key is configured and
// mock mode is off.
var ErrMissingAPIKey = errors.New("llm.gemini_api_key is required unless llm.mock_mode is enabled")

// Load reads configuration from environment variables and an optional
// config file. Environment variables take precedence over file values.
// Returns a populated Config struct or an error if loading or validation
// fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	// An explicit empty default registers the key so AutomaticEnv can
	// populate it during Unmarshal.
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-2.0-flash")
	v.SetDefault("llm.mock_mode", false)
	v.SetDefault("llm.score_threshold", 75)
	v.SetDefault("llm.max_section_retries", 2)
	v.SetDefault("llm.max_concurrent_expansions", 4)
	v.SetDefault("llm.requests_per_minute", 60)
	v.SetDefault("llm.cache_ttl_seconds", 300)

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

	// Environment variables: SLIDEGENIE_SERVER_PORT, SLIDEGENIE_LLM_GEMINI_API_KEY, ...
	v.SetEnvPrefix("SLIDEGENIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Conditional requirement the struct tags cannot express: a real client
	// needs a credential, the mock client does not.
	if cfg.LLM.GeminiAPIKey == "" && !cfg.LLM.MockMode {
		return nil, ErrMissingAPIKey
	}

	return &cfg, nil
}
