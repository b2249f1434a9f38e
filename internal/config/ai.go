package config

import (
	"os"
	"strconv"
)

// AIConfig holds the settings for the external text-completion collaborator.
type AIConfig struct {
	APIKey     string `json:"-"` // Never serialize
	BaseURL    string `json:"baseUrl"`
	Model      string `json:"model"`
	MaxRemarks int    `json:"maxRemarks"`
	TimeoutMS  int    `json:"timeoutMs"`
}

// DefaultAIConfig returns the AI configuration read from the environment.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:     os.Getenv("AI_API_KEY"),
		BaseURL:    getEnvOrDefault("AI_BASE_URL", "https://models.inference.ai.azure.com"),
		Model:      getEnvOrDefault("AI_MODEL", "gpt-4o-mini"),
		MaxRemarks: getEnvIntOrDefault("AI_MAX_REMARKS", 30),
		TimeoutMS:  getEnvIntOrDefault("AI_TIMEOUT_MS", 10000),
	}
}

// IsEnabled returns true if the AI collaborator is configured. Without a key
// all narration uses the deterministic fallback path.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// Endpoint returns the chat-completions URL.
func (c *AIConfig) Endpoint() string {
	return c.BaseURL + "/chat/completions"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}
