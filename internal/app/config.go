package app

import (
	"movemate/internal/config"
	"movemate/internal/repository/db"
	"movemate/internal/service/llm"
	"movemate/internal/service/search"
)

// Config holds all application dependencies and configuration
type Config struct {
	// Database interface for data persistence
	DB db.Database
	// SearchClient is the business-search collaborator
	SearchClient search.Client
	// LLMProvider is the hosted model collaborator
	LLMProvider llm.LLMProvider
	// Centralized application configuration
	AppConfig *config.AppConfig
}

// NewConfig creates a new application configuration
func NewConfig(database db.Database, searchClient search.Client, llmProvider llm.LLMProvider, appConfig *config.AppConfig) *Config {
	return &Config{
		DB:           database,
		SearchClient: searchClient,
		LLMProvider:  llmProvider,
		AppConfig:    appConfig,
	}
}

// ModelsConfig returns the allowed-models configuration
func (c *Config) ModelsConfig() *config.ModelsConfig {
	return c.AppConfig.Models
}
