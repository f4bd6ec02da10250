package db

import (
	"movemate/internal/service/llm"
)

// Database defines the interface for all database operations.
// This allows for easier testing through mocking and decouples the
// services from the specific database implementation.
type Database interface {
	// Users
	GetUserByEmail(email string) (*User, error)
	GetUserByID(id string) (*User, error)
	CreateUser(firstName, lastName, email, password string) (*User, error)

	// Conversations
	GetConversation(id string) (*Conversation, error)
	CreateConversation(userID, title string) (*Conversation, error)
	GetConversationsByUser(userID string) ([]Conversation, error)
	UpdateConversationTitle(id, title string) error
	DeleteConversation(id string) error

	// Messages
	AddMessage(conversationID, role, content string) (*Message, error)
	GetConversationMessages(conversationID string) ([]llm.Message, error)
	GetConversationMessagesWithDetails(conversationID string) ([]Message, error)
}
