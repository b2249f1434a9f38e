package config

import (
	"os"

	"github.com/joho/godotenv"
)

// SourcesConfig holds the spreadsheet-backed endpoint URLs, one per
// checklist source. An empty URL disables that source.
type SourcesConfig struct {
	HRURL         string
	OperationsURL string
	TrainingURL   string
	QAURL         string
	FinanceURL    string
	TimeoutMS     int
}

// Config is the full server configuration, read from the environment.
type Config struct {
	Port         string
	MongoURI     string
	RedisURI     string
	CacheBackend string // "memory" (default) or "redis"
	AI           *AIConfig
	Sources      *SourcesConfig
}

// Load reads configuration from a .env file (when present) and the
// environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		MongoURI:     os.Getenv("MONGO_URI"),
		RedisURI:     os.Getenv("REDIS_URI"),
		CacheBackend: getEnvOrDefault("CACHE_BACKEND", "memory"),
		AI:           DefaultAIConfig(),
		Sources: &SourcesConfig{
			HRURL:         os.Getenv("SHEETS_HR_URL"),
			OperationsURL: os.Getenv("SHEETS_OPERATIONS_URL"),
			TrainingURL:   os.Getenv("SHEETS_TRAINING_URL"),
			QAURL:         os.Getenv("SHEETS_QA_URL"),
			FinanceURL:    os.Getenv("SHEETS_FINANCE_URL"),
			TimeoutMS:     getEnvIntOrDefault("SHEETS_TIMEOUT_MS", 30000),
		},
	}
}
