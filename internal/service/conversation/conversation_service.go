package conversation

import (
	"fmt"

	"movemate/internal/repository/db"
)

// ConversationInfo is the read-model for a single conversation listing
type ConversationInfo struct {
	ID        string
	Title     string
	CreatedAt string
	UpdatedAt string
}

// ConversationService handles the business logic for conversation management
type ConversationService struct {
	db db.Database
}

// NewConversationService creates a new ConversationService
func NewConversationService(database db.Database) *ConversationService {
	return &ConversationService{
		db: database,
	}
}

// StartConversation creates a fresh conversation for a user with a
// placeholder title, for the explicit start-chat endpoint.
func (s *ConversationService) StartConversation(userID string) (*db.Conversation, error) {
	if _, err := s.db.GetUserByID(userID); err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	conversation, err := s.db.CreateConversation(userID, "New Conversation")
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	return conversation, nil
}

// GetUserConversations retrieves all conversations for a user, newest first
func (s *ConversationService) GetUserConversations(userID string) ([]ConversationInfo, error) {
	conversations, err := s.db.GetConversationsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversations: %w", err)
	}

	result := make([]ConversationInfo, 0, len(conversations))
	for _, conv := range conversations {
		result = append(result, ConversationInfo{
			ID:        conv.ID,
			Title:     conv.Title,
			CreatedAt: conv.CreatedAt.String(),
			UpdatedAt: conv.UpdatedAt.String(),
		})
	}

	return result, nil
}

// GetConversationMessages retrieves all messages from a specific conversation
func (s *ConversationService) GetConversationMessages(conversationID string) ([]db.Message, error) {
	if _, err := s.db.GetConversation(conversationID); err != nil {
		return nil, fmt.Errorf("conversation not found: %w", err)
	}

	messages, err := s.db.GetConversationMessagesWithDetails(conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %w", err)
	}

	return messages, nil
}

// DeleteConversation deletes a conversation if the user owns it
func (s *ConversationService) DeleteConversation(conversationID, userID string) error {
	conversation, err := s.db.GetConversation(conversationID)
	if err != nil {
		return fmt.Errorf("conversation not found: %w", err)
	}

	if conversation.UserID != userID {
		return fmt.Errorf("unauthorized: user does not own this conversation")
	}

	if err := s.db.DeleteConversation(conversationID); err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}

	return nil
}
