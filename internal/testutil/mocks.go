package testutil

import (
	"context"
	"errors"
	"time"

	"movemate/internal/app"
	"movemate/internal/config"
	"movemate/internal/repository/db"
	"movemate/internal/service/llm"
	"movemate/internal/service/search"
)

// MockDatabase is a mock implementation of db.Database for testing
type MockDatabase struct {
	// User mocks
	GetUserByEmailFunc func(email string) (*db.User, error)
	GetUserByIDFunc    func(id string) (*db.User, error)
	CreateUserFunc     func(firstName, lastName, email, password string) (*db.User, error)

	// Conversation mocks
	GetConversationFunc         func(id string) (*db.Conversation, error)
	CreateConversationFunc      func(userID, title string) (*db.Conversation, error)
	GetConversationsByUserFunc  func(userID string) ([]db.Conversation, error)
	UpdateConversationTitleFunc func(id, title string) error
	DeleteConversationFunc      func(id string) error

	// Message mocks
	AddMessageFunc                         func(conversationID, role, content string) (*db.Message, error)
	GetConversationMessagesFunc            func(conversationID string) ([]llm.Message, error)
	GetConversationMessagesWithDetailsFunc func(conversationID string) ([]db.Message, error)
}

func (m *MockDatabase) GetUserByEmail(email string) (*db.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(email)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDatabase) GetUserByID(id string) (*db.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(id)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDatabase) CreateUser(firstName, lastName, email, password string) (*db.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(firstName, lastName, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDatabase) GetConversation(id string) (*db.Conversation, error) {
	if m.GetConversationFunc != nil {
		return m.GetConversationFunc(id)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDatabase) CreateConversation(userID, title string) (*db.Conversation, error) {
	if m.CreateConversationFunc != nil {
		return m.CreateConversationFunc(userID, title)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDatabase) GetConversationsByUser(userID string) ([]db.Conversation, error) {
	if m.GetConversationsByUserFunc != nil {
		return m.GetConversationsByUserFunc(userID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDatabase) UpdateConversationTitle(id, title string) error {
	if m.UpdateConversationTitleFunc != nil {
		return m.UpdateConversationTitleFunc(id, title)
	}
	return errors.New("not implemented")
}

func (m *MockDatabase) DeleteConversation(id string) error {
	if m.DeleteConversationFunc != nil {
		return m.DeleteConversationFunc(id)
	}
	return errors.New("not implemented")
}

func (m *MockDatabase) AddMessage(conversationID, role, content string) (*db.Message, error) {
	if m.AddMessageFunc != nil {
		return m.AddMessageFunc(conversationID, role, content)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDatabase) GetConversationMessages(conversationID string) ([]llm.Message, error) {
	if m.GetConversationMessagesFunc != nil {
		return m.GetConversationMessagesFunc(conversationID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockDatabase) GetConversationMessagesWithDetails(conversationID string) ([]db.Message, error) {
	if m.GetConversationMessagesWithDetailsFunc != nil {
		return m.GetConversationMessagesWithDetailsFunc(conversationID)
	}
	return nil, errors.New("not implemented")
}

// MockLLMProvider is a mock implementation of llm.LLMProvider for testing
type MockLLMProvider struct {
	ChatWithHistoryFunc   func(ctx context.Context, messages []llm.Message, systemPrompt string, modelOverride string, temperature *float64) (string, error)
	ExtractStructuredFunc func(ctx context.Context, prompt string, keys []string) (map[string]string, error)
	GetDefaultModelFunc   func() string
}

func (m *MockLLMProvider) ChatWithHistory(ctx context.Context, messages []llm.Message, systemPrompt string, modelOverride string, temperature *float64) (string, error) {
	if m.ChatWithHistoryFunc != nil {
		return m.ChatWithHistoryFunc(ctx, messages, systemPrompt, modelOverride, temperature)
	}
	return "", errors.New("not implemented")
}

func (m *MockLLMProvider) ExtractStructured(ctx context.Context, prompt string, keys []string) (map[string]string, error) {
	if m.ExtractStructuredFunc != nil {
		return m.ExtractStructuredFunc(ctx, prompt, keys)
	}
	return nil, errors.New("not implemented")
}

func (m *MockLLMProvider) GetDefaultModel() string {
	if m.GetDefaultModelFunc != nil {
		return m.GetDefaultModelFunc()
	}
	return "default-model"
}

// MockSearchClient is a mock implementation of search.Client for testing
type MockSearchClient struct {
	QueryFunc func(ctx context.Context, text string, qc search.QueryContext) search.Outcome
}

func (m *MockSearchClient) Query(ctx context.Context, text string, qc search.QueryContext) search.Outcome {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, text, qc)
	}
	return search.Outcome{Err: &search.SearchError{Reason: "not implemented"}}
}

// NewMockConfig creates an app.Config wired with the given mocks for testing
func NewMockConfig(database *MockDatabase, searchClient *MockSearchClient, llmProvider *MockLLMProvider) *app.Config {
	return &app.Config{
		DB:           database,
		SearchClient: searchClient,
		LLMProvider:  llmProvider,
		AppConfig: &config.AppConfig{
			LLM: config.LLMConfig{
				Provider:         "openrouter",
				OpenRouterAPIKey: "test-api-key",
				Temperature:      0.7,
				StructuredTemp:   0.2,
			},
			Search: config.SearchConfig{
				YelpAPIKey: "test-yelp-key",
				Mode:       "ai",
				Timeout:    5 * time.Second,
				Locale:     "en_US",
			},
			Models: &config.ModelsConfig{},
		},
	}
}
