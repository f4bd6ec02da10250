package title

import (
	"context"
	"fmt"
	"strings"

	"movemate/internal/logger"
	"movemate/internal/repository/db"
	"movemate/internal/service/llm"

	"github.com/sirupsen/logrus"
)

// titlePrompt produces the generated conversation title.
const titlePrompt = `Generate a very short title (at most 6 words) summarizing the user's message. Respond with the title only: no quotes, no punctuation at the end, no explanations.`

// maxTitleRunes bounds the stored title length.
const maxTitleRunes = 100

// TitleService generates and persists conversation titles with a single
// short completion.
type TitleService struct {
	db          db.Database
	llmProvider llm.LLMProvider
}

// NewTitleService creates a new TitleService
func NewTitleService(database db.Database, llmProvider llm.LLMProvider) *TitleService {
	return &TitleService{
		db:          database,
		llmProvider: llmProvider,
	}
}

// GenerateTitle derives a title from the given message and stores it on
// the conversation. It returns the stored title.
func (s *TitleService) GenerateTitle(ctx context.Context, conversationID, message string) (string, error) {
	messages := []llm.Message{{Role: db.RoleUser, Content: message}}

	raw, err := s.llmProvider.ChatWithHistory(ctx, messages, titlePrompt, "", nil)
	if err != nil {
		return "", fmt.Errorf("LLM error during title generation: %w", err)
	}

	generated := cleanTitle(raw)
	if generated == "" {
		return "", fmt.Errorf("title generation produced empty title")
	}

	if err := s.db.UpdateConversationTitle(conversationID, generated); err != nil {
		return "", fmt.Errorf("failed to save title: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"conversation_id": conversationID,
		"title":           generated,
	}).Info("Generated conversation title")

	return generated, nil
}

// RegenerateTitle rebuilds the title from the conversation's first user
// message, for manual regeneration by an external caller.
func (s *TitleService) RegenerateTitle(ctx context.Context, conversationID, userID string) (string, error) {
	conversation, err := s.db.GetConversation(conversationID)
	if err != nil {
		return "", fmt.Errorf("conversation not found: %w", err)
	}

	if conversation.UserID != userID {
		return "", fmt.Errorf("unauthorized: user does not own this conversation")
	}

	messages, err := s.db.GetConversationMessagesWithDetails(conversationID)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve messages: %w", err)
	}

	for _, m := range messages {
		if m.Role == db.RoleUser {
			return s.GenerateTitle(ctx, conversationID, m.Content)
		}
	}

	return "", fmt.Errorf("conversation has no user messages")
}

// cleanTitle strips quotes and whitespace and truncates to the stored limit
func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	title = strings.Trim(title, `"'`)
	if idx := strings.IndexByte(title, '\n'); idx >= 0 {
		title = title[:idx]
	}
	title = strings.TrimSpace(title)

	runes := []rune(title)
	if len(runes) > maxTitleRunes {
		title = string(runes[:maxTitleRunes])
	}
	return title
}
