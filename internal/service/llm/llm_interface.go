package llm

import "context"

// Message is a single role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LLMProvider defines the interface for LLM providers (OpenRouter direct API, OpenAI, etc.)
type LLMProvider interface {
	// ChatWithHistory sends a chat request with conversation history and returns the full response
	ChatWithHistory(ctx context.Context, messages []Message, systemPrompt string, modelOverride string, temperature *float64) (string, error)

	// ExtractStructured issues a single-turn request instructing the model to
	// return only a JSON object with the given keys and parses the reply.
	// Malformed JSON is returned as an error; callers treat it as recoverable.
	ExtractStructured(ctx context.Context, prompt string, keys []string) (map[string]string, error)

	// GetDefaultModel returns the default model for this provider
	GetDefaultModel() string
}
