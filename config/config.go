package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string

	MongoURL string

	AnthropicAPIKey  string
	AnthropicBaseURL string
	AnthropicModel   string
	AnthropicTokens  int

	YouTubeAPIKey  string
	YouTubeBaseURL string

	ProviderTimeoutSec int
	MaxVideoResults    int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		DBName: getEnv("DB_NAME", "course_builder"),

		MongoURL: getEnv("MONGODB_URL", "mongodb://localhost:27017"),

		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicBaseURL: getEnv("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5-20250929"),
		AnthropicTokens:  getEnvInt("ANTHROPIC_MAX_TOKENS", 4000),

		YouTubeAPIKey:  getEnv("YOUTUBE_API_KEY", ""),
		YouTubeBaseURL: getEnv("YOUTUBE_BASE_URL", "https://www.googleapis.com/youtube/v3"),

		ProviderTimeoutSec: getEnvInt("PROVIDER_TIMEOUT_SEC", 30),
		MaxVideoResults:    getEnvInt("MAX_VIDEO_RESULTS", 8),
	}

	// Validate critical configuration
	if AppConfig.AnthropicAPIKey == "" {
		log.Println("Warning: ANTHROPIC_API_KEY is not set. Course generation will fail.")
	}
	if AppConfig.YouTubeAPIKey == "" {
		log.Println("Warning: YOUTUBE_API_KEY is not set. Video resources will be unavailable.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
