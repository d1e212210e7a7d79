package gemini

import "github.com/slidegenie/slidegenie-api/internal/config"

// validLLMConfig returns a minimal valid LLM configuration for tests.
func validLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey:      "test-key",
		ModelName:         "gemini-2.0-flash",
		ScoreThreshold:    75,
		MaxSectionRetries: 2,
	}
}
