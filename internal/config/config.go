package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// CORSOrigins is the list of origins allowed by the CORS middleware.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is the upstream API credential. Required unless MockMode
	// is enabled.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// ModelName is the Gemini model used for every pipeline stage.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// MockMode substitutes deterministic placeholder content for every LLM
	// call. Used for offline testing; no network calls are made.
	MockMode bool `mapstructure:"mock_mode"`

	// ScoreThreshold is the minimum confidence score for the AI quality
	// gate (0 disables the override and uses the package default).
	ScoreThreshold int `mapstructure:"score_threshold" validate:"gte=0,lte=100"`

	// MaxSectionRetries bounds additional slide-writer attempts per section
	// after the first rejection.
	MaxSectionRetries int `mapstructure:"max_section_retries" validate:"gte=0,lte=5"`

	// MaxConcurrentExpansions caps simultaneous slide-writer calls per
	// request. Zero means no cap beyond the section count.
	MaxConcurrentExpansions int `mapstructure:"max_concurrent_expansions" validate:"gte=0"`

	// RequestsPerMinute throttles outbound Gemini calls across all
	// concurrent requests. Zero disables throttling.
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"gte=0"`

	// CacheTTLSeconds is the lifetime of cached presentation structures.
	// Zero disables the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}
