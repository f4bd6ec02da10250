package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"movemate/internal/config"
	"movemate/internal/logger"

	"github.com/sirupsen/logrus"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterProvider implements LLMProvider using direct OpenRouter API calls
type OpenRouterProvider struct {
	config *config.LLMConfig
	models *config.ModelsConfig
	// baseURL is overridable for tests
	baseURL string
	client  *http.Client
}

// NewOpenRouterProvider creates a new OpenRouter provider with config
func NewOpenRouterProvider(llmConfig *config.LLMConfig, modelsConfig *config.ModelsConfig) *OpenRouterProvider {
	return &OpenRouterProvider{
		config:  llmConfig,
		models:  modelsConfig,
		baseURL: openRouterURL,
		client:  &http.Client{},
	}
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Stream         bool            `json:"stream"`
	Temperature    *float64        `json:"temperature,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (p *OpenRouterProvider) getModel() string {
	return p.models.GetDefaultModel()
}

// GetDefaultModel returns the default model for this provider
func (p *OpenRouterProvider) GetDefaultModel() string {
	return p.getModel()
}

// ChatWithHistory sends a chat request with conversation history and returns the full response
func (p *OpenRouterProvider) ChatWithHistory(ctx context.Context, messages []Message, systemPrompt string, modelOverride string, temperature *float64) (string, error) {
	model := modelOverride
	if model == "" {
		model = p.getModel()
	}

	logger.Log.WithFields(logrus.Fields{
		"model":         model,
		"message_count": len(messages),
	}).Info("Calling OpenRouter API")

	withSystem := messages
	if systemPrompt != "" {
		withSystem = append([]Message{{Role: "system", Content: systemPrompt}}, messages...)
	}

	reqBody := chatRequest{
		Model:       model,
		Messages:    withSystem,
		Stream:      false,
		Temperature: temperature,
	}

	content, err := p.complete(ctx, reqBody)
	if err != nil {
		return "", err
	}

	logger.Log.WithField("content_length", len(content)).Debug("Extracted content from response")
	return content, nil
}

// ExtractStructured issues a single-turn JSON-mode request and parses the reply
func (p *OpenRouterProvider) ExtractStructured(ctx context.Context, prompt string, keys []string) (map[string]string, error) {
	model := p.getModel()

	logger.Log.WithFields(logrus.Fields{
		"model": model,
		"keys":  keys,
	}).Info("Calling OpenRouter API for structured extraction")

	temp := p.config.StructuredTemp
	reqBody := chatRequest{
		Model: model,
		Messages: []Message{
			{Role: "system", Content: extractionSystemPrompt(keys)},
			{Role: "user", Content: prompt},
		},
		Stream:         false,
		Temperature:    &temp,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	content, err := p.complete(ctx, reqBody)
	if err != nil {
		return nil, err
	}

	return parseExtraction(content)
}

// complete performs a single non-streaming round trip
func (p *OpenRouterProvider) complete(ctx context.Context, reqBody chatRequest) (string, error) {
	apiKey := p.config.OpenRouterAPIKey
	if apiKey == "" {
		return "", fmt.Errorf("OPENROUTER_API_KEY not configured")
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("X-Title", "MoveMate")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("error decoding response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// extractionSystemPrompt builds the JSON-only instruction for structured extraction
func extractionSystemPrompt(keys []string) string {
	return fmt.Sprintf(
		"You extract structured data. Respond ONLY with a JSON object containing exactly these string keys: %s. No explanations, no markdown, just the JSON object.",
		strings.Join(keys, ", "),
	)
}

// parseExtraction parses a structured-extraction reply into a string map.
// Models occasionally wrap JSON in code fences despite instructions.
func parseExtraction(content string) (map[string]string, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, fmt.Errorf("error parsing extraction reply: %w", err)
	}

	result := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			result[k] = s
		}
	}
	return result, nil
}
