package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"movemate/internal/logger"

	"github.com/sirupsen/logrus"
)

// AppConfig holds all application configuration
type AppConfig struct {
	Server   ServerConfig
	Database DatabaseConfig
	LLM      LLMConfig
	Search   SearchConfig
	Auth     AuthConfig
	Models   *ModelsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// LLMConfig holds LLM provider configuration
type LLMConfig struct {
	Provider         string
	OpenRouterAPIKey string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	Temperature      float64
	StructuredTemp   float64
}

// SearchConfig holds business-search provider configuration
type SearchConfig struct {
	YelpAPIKey string
	Mode       string // "ai" (conversational endpoint) or "fusion" (structured search)
	Timeout    time.Duration
	Locale     string
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret       []byte
	TokenExpiration time.Duration
}

// LoadConfig loads and validates application configuration from environment
func LoadConfig() (*AppConfig, error) {
	config := &AppConfig{}

	config.Server = ServerConfig{
		Port: getEnvOrDefault("SERVER_PORT", "8080"),
	}

	config.Database = DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "postgres"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
		Name:     getEnvOrDefault("DB_NAME", "movemate"),
		SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
	}

	// Model provider credentials: missing keys fail startup rather than
	// letting requests fail later with empty bearer tokens.
	provider := getEnvOrDefault("LLM_PROVIDER", "openrouter")
	openRouterKey := os.Getenv("OPENROUTER_API_KEY")
	openAIKey := os.Getenv("OPENAI_API_KEY")
	switch provider {
	case "openrouter":
		if openRouterKey == "" {
			return nil, fmt.Errorf("OPENROUTER_API_KEY environment variable must be set")
		}
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable must be set")
		}
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER: %s", provider)
	}

	config.LLM = LLMConfig{
		Provider:         provider,
		OpenRouterAPIKey: openRouterKey,
		OpenAIAPIKey:     openAIKey,
		OpenAIBaseURL:    getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Temperature:      getEnvAsFloat("LLM_TEMPERATURE", 0.7),
		StructuredTemp:   getEnvAsFloat("LLM_STRUCTURED_TEMPERATURE", 0.2),
	}

	yelpKey := os.Getenv("YELP_API_KEY")
	if yelpKey == "" {
		return nil, fmt.Errorf("YELP_API_KEY environment variable must be set")
	}

	searchMode := getEnvOrDefault("YELP_API_MODE", "ai")
	if searchMode != "ai" && searchMode != "fusion" {
		logger.Log.WithField("mode", searchMode).Warn("Unknown YELP_API_MODE, using ai")
		searchMode = "ai"
	}

	config.Search = SearchConfig{
		YelpAPIKey: yelpKey,
		Mode:       searchMode,
		Timeout:    getEnvAsDuration("SEARCH_TIMEOUT", 30*time.Second),
		Locale:     getEnvOrDefault("SEARCH_LOCALE", "en_US"),
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set")
	}
	if len(jwtSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters (current length: %d)", len(jwtSecret))
	}

	config.Auth = AuthConfig{
		JWTSecret:       []byte(jwtSecret),
		TokenExpiration: getEnvAsDuration("JWT_TOKEN_EXPIRATION", 24*time.Hour),
	}

	modelsConfigPath := getEnvOrDefault("MODELS_CONFIG_PATH", filepath.Join("config", "models.json"))
	modelsConfig, err := NewModelsConfig(modelsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load models config: %w", err)
	}
	config.Models = modelsConfig

	return config, nil
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid float value, using default")
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid duration value, using default")
		return defaultValue
	}
	return value
}
