package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	SeedFile       string
	Language       string
	PageSize       int
	Overscan       int
	OpenAIKey      string
	OpenAIModel    string
	APIBaseURL     string
	AIRatePerMin   int
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		SeedFile:       getEnv("SEED_FILE", "data/tasks.json"),
		Language:       getEnv("APP_LANGUAGE", "fr"),
		PageSize:       getEnvInt("PAGE_SIZE", 150),
		Overscan:       getEnvInt("GRID_OVERSCAN", 10),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8080"),
		AIRatePerMin:   getEnvInt("AI_RATE_PER_MIN", 10),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
