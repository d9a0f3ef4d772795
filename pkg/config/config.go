package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	ModelName     string
	OpenAIAPIKey  string
	OpenAIBaseURL string
}

// Load reads environment variables, optionally from a .env file if present.
// Variables already set in the process environment always win over the file,
// and a missing file is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		ModelName:     getEnv("MODEL_NAME", "gpt-4o-mini"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
