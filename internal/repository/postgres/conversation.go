package postgres

import (
	"fmt"
	"time"

	"movemate/internal/logger"
	"movemate/internal/repository/db"
	"movemate/internal/service/llm"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CreateConversation creates a new conversation for a user
func (p *PostgresDB) CreateConversation(userID string, title string) (*db.Conversation, error) {
	conn := p.conn

	convID := uuid.New().String()
	var createdAt, updatedAt time.Time

	query := `
	INSERT INTO conversations (id, user_id, title)
	VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at
	`

	err := conn.QueryRow(query, convID, userID, title).Scan(&convID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating conversation: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{"conversation_id": convID, "user_id": userID}).Info("Created new conversation")

	return &db.Conversation{
		ID:        convID,
		UserID:    userID,
		Title:     title,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// GetConversationsByUser retrieves all conversations for a user
func (p *PostgresDB) GetConversationsByUser(userID string) ([]db.Conversation, error) {
	conn := p.conn

	query := `
	SELECT id, user_id, title, created_at, updated_at
	FROM conversations
	WHERE user_id = $1
	ORDER BY updated_at DESC
	`

	rows, err := conn.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying conversations: %w", err)
	}
	defer rows.Close()

	var conversations []db.Conversation
	for rows.Next() {
		var conv db.Conversation
		if err := rows.Scan(&conv.ID, &conv.UserID, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning conversation: %w", err)
		}
		conversations = append(conversations, conv)
	}

	return conversations, nil
}

// GetConversation retrieves a specific conversation
func (p *PostgresDB) GetConversation(convID string) (*db.Conversation, error) {
	conn := p.conn

	var conv db.Conversation
	query := `
	SELECT id, user_id, title, created_at, updated_at
	FROM conversations
	WHERE id = $1
	`

	err := conn.QueryRow(query, convID).Scan(&conv.ID, &conv.UserID, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error retrieving conversation: %w", err)
	}

	return &conv, nil
}

// UpdateConversationTitle replaces the conversation title
func (p *PostgresDB) UpdateConversationTitle(convID string, title string) error {
	conn := p.conn

	query := `UPDATE conversations SET title = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	_, err := conn.Exec(query, title, convID)
	if err != nil {
		return fmt.Errorf("error updating conversation title: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{"conversation_id": convID, "title": title}).Info("Updated conversation title")
	return nil
}

// AddMessage appends a message to a conversation
func (p *PostgresDB) AddMessage(conversationID string, role, content string) (*db.Message, error) {
	conn := p.conn

	msgID := uuid.New().String()
	var createdAt time.Time

	query := `
	INSERT INTO messages (id, conversation_id, role, content)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at
	`

	err := conn.QueryRow(query, msgID, conversationID, role, content).Scan(&msgID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("error adding message: %w", err)
	}

	// Update conversation updated_at timestamp
	updateQuery := `UPDATE conversations SET updated_at = CURRENT_TIMESTAMP WHERE id = $1`
	if _, err := conn.Exec(updateQuery, conversationID); err != nil {
		logger.Log.WithError(err).Warn("Error updating conversation timestamp")
	}

	logger.Log.WithFields(logrus.Fields{
		"conversation_id": conversationID,
		"role":            role,
		"content_chars":   len(content),
	}).Debug("Added message to conversation")

	return &db.Message{
		ID:             msgID,
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		CreatedAt:      createdAt,
	}, nil
}

// GetConversationMessages retrieves all messages from a conversation in LLM format
func (p *PostgresDB) GetConversationMessages(conversationID string) ([]llm.Message, error) {
	conn := p.conn

	query := `
	SELECT role, content
	FROM messages
	WHERE conversation_id = $1
	ORDER BY created_at ASC
	`

	rows, err := conn.Query(query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	var messages []llm.Message
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, llm.Message{
			Role:    role,
			Content: content,
		})
	}

	return messages, nil
}

// GetConversationMessagesWithDetails retrieves all messages with full details for frontend display
func (p *PostgresDB) GetConversationMessagesWithDetails(conversationID string) ([]db.Message, error) {
	conn := p.conn

	query := `
	SELECT id, conversation_id, role, content, created_at
	FROM messages
	WHERE conversation_id = $1
	ORDER BY created_at ASC
	`

	rows, err := conn.Query(query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("error querying messages: %w", err)
	}
	defer rows.Close()

	var messages []db.Message
	for rows.Next() {
		var msg db.Message
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// DeleteConversation deletes a conversation and all its messages
func (p *PostgresDB) DeleteConversation(convID string) error {
	conn := p.conn

	query := `DELETE FROM conversations WHERE id = $1`
	_, err := conn.Exec(query, convID)
	if err != nil {
		return fmt.Errorf("error deleting conversation: %w", err)
	}

	logger.Log.WithField("conversation_id", convID).Info("Deleted conversation")
	return nil
}
