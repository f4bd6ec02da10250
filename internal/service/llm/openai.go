package llm

import (
	"context"
	"fmt"

	"movemate/internal/config"
	"movemate/internal/logger"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// OpenAIProvider implements LLMProvider using the OpenAI-compatible API
// via the go-openai client. The base URL is configurable so any
// OpenAI-compatible endpoint can be used.
type OpenAIProvider struct {
	client *openai.Client
	config *config.LLMConfig
	models *config.ModelsConfig
}

// NewOpenAIProvider creates a new OpenAI provider with config
func NewOpenAIProvider(llmConfig *config.LLMConfig, modelsConfig *config.ModelsConfig) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(llmConfig.OpenAIAPIKey)
	if llmConfig.OpenAIBaseURL != "" {
		clientConfig.BaseURL = llmConfig.OpenAIBaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: llmConfig,
		models: modelsConfig,
	}
}

// GetDefaultModel returns the default model for this provider
func (p *OpenAIProvider) GetDefaultModel() string {
	return p.models.GetDefaultModel()
}

// ChatWithHistory sends a chat request with conversation history and returns the full response
func (p *OpenAIProvider) ChatWithHistory(ctx context.Context, messages []Message, systemPrompt string, modelOverride string, temperature *float64) (string, error) {
	model := modelOverride
	if model == "" {
		model = p.GetDefaultModel()
	}

	logger.Log.WithFields(logrus.Fields{
		"model":         model,
		"message_count": len(messages),
	}).Info("Calling OpenAI API")

	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	if systemPrompt != "" {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	for _, m := range messages {
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: chatMessages,
	}
	if temperature != nil {
		req.Temperature = float32(*temperature)
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return resp.Choices[0].Message.Content, nil
}

// ExtractStructured issues a single-turn JSON-mode request and parses the reply
func (p *OpenAIProvider) ExtractStructured(ctx context.Context, prompt string, keys []string) (map[string]string, error) {
	model := p.GetDefaultModel()

	logger.Log.WithFields(logrus.Fields{
		"model": model,
		"keys":  keys,
	}).Info("Calling OpenAI API for structured extraction")

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionSystemPrompt(keys)},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(p.config.StructuredTemp),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from API")
	}

	return parseExtraction(resp.Choices[0].Message.Content)
}
