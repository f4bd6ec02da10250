package llm

import (
	"fmt"

	"movemate/internal/config"
	"movemate/internal/logger"
)

// ProviderType represents the type of LLM provider
type ProviderType string

const (
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOpenAI     ProviderType = "openai"
)

// ParseProviderType parses a string into a ProviderType
func ParseProviderType(s string) (ProviderType, error) {
	switch s {
	case "openrouter", "":
		return ProviderOpenRouter, nil
	case "openai":
		return ProviderOpenAI, nil
	default:
		return "", fmt.Errorf("unknown provider type: %s", s)
	}
}

// NewLLMProvider creates a new LLM provider based on the configured type
func NewLLMProvider(llmConfig *config.LLMConfig, modelsConfig *config.ModelsConfig) (LLMProvider, error) {
	providerType, err := ParseProviderType(llmConfig.Provider)
	if err != nil {
		return nil, err
	}

	switch providerType {
	case ProviderOpenRouter:
		logger.Log.Info("Creating OpenRouter provider")
		return NewOpenRouterProvider(llmConfig, modelsConfig), nil
	case ProviderOpenAI:
		logger.Log.Info("Creating OpenAI provider")
		return NewOpenAIProvider(llmConfig, modelsConfig), nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
