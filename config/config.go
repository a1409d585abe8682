package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	OpenAIAPIKey string
	ModelName    string
	AgentEnabled bool
	HistoryLimit int // previous messages loaded as conversation context
}

func GetConfig() Config {
	return Config{
		Port:         getEnv("PORT", "8000"),
		DatabaseURL:  getEnv("DATABASE_URL", "./components.db"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		ModelName:    getEnv("OPENAI_MODEL", "gpt-4o"),
		AgentEnabled: getEnv("AGENT_ENABLED", "false") == "true",
		HistoryLimit: getEnvInt("CHAT_HISTORY_LIMIT", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
