package handlers

import (
	"encoding/json"
	"net/http"

	"movemate/internal/app"
	"movemate/internal/auth"
	"movemate/internal/logger"
	chatService "movemate/internal/service/chat"
	conversationService "movemate/internal/service/conversation"
	titleService "movemate/internal/service/title"
	"movemate/pkg/validation"
)

// Request/Response types

type ChatRequest struct {
	UserID         string   `json:"user_id"`
	ConversationID string   `json:"conversation_id,omitempty"`
	Message        string   `json:"message"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Model          string   `json:"model,omitempty"`
	Temperature    *float64 `json:"temperature,omitempty"`
}

type ChatResponse struct {
	Response       string  `json:"response"`
	ConversationID string  `json:"conversation_id"`
	Title          *string `json:"title"`
}

type StartChatRequest struct {
	UserID string `json:"user_id"`
}

type StartChatResponse struct {
	ConversationID string `json:"conversation_id"`
}

type ConversationInfo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ConversationsResponse struct {
	Conversations []ConversationInfo `json:"conversations"`
}

type MessageData struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type MessagesResponse struct {
	Messages []MessageData `json:"messages"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TitleResponse struct {
	Title          string `json:"title"`
	ConversationID string `json:"conversation_id"`
}

type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// sendError sends a standardized JSON error response
func sendError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := ErrorResponse{
		Code:    status,
		Message: message,
	}
	if err != nil {
		errResp.Error = err.Error()
	}
	json.NewEncoder(w).Encode(errResp)
}

// ChatHandlers uses the service layer for better separation of concerns
type ChatHandlers struct {
	config              *app.Config
	validator           *validation.ChatRequestValidator
	chatService         *chatService.ChatService
	conversationService *conversationService.ConversationService
	titleService        *titleService.TitleService
}

// NewChatHandlers creates a new ChatHandlers with service layer
func NewChatHandlers(config *app.Config) *ChatHandlers {
	return &ChatHandlers{
		config:              config,
		validator:           validation.NewChatRequestValidator(),
		chatService:         chatService.NewChatService(config),
		conversationService: conversationService.NewConversationService(config.DB),
		titleService:        titleService.NewTitleService(config.DB, config.LLMProvider),
	}
}

// authenticatedUserID pulls the user ID set by the auth middleware
func authenticatedUserID(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value(auth.UserContextKey).(string)
	return userID, ok
}

// ChatHandler processes one chat turn
func (ch *ChatHandlers) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := ch.validator.ValidateChatRequest(req.UserID, req.Message, req.Temperature, req.Latitude, req.Longitude); err != nil {
		sendError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	if userID, ok := authenticatedUserID(r); ok && userID != req.UserID {
		sendError(w, http.StatusForbidden, "Token does not match user_id", nil)
		return
	}

	turn, err := ch.chatService.HandleTurn(r.Context(), chatService.TurnRequest{
		Message:        req.Message,
		ConversationID: req.ConversationID,
		UserID:         req.UserID,
		Model:          req.Model,
		Temperature:    req.Temperature,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	})
	if err != nil {
		logger.Log.WithError(err).Error("Error from chat service")
		sendError(w, http.StatusInternalServerError, "Error processing message", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{
		Response:       turn.Response,
		ConversationID: turn.ConversationID,
		Title:          turn.Title,
	})
}

// StartChatHandler creates a fresh conversation
func (ch *ChatHandlers) StartChatHandler(w http.ResponseWriter, r *http.Request) {
	var req StartChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.UserID == "" {
		sendError(w, http.StatusBadRequest, "user_id is required", nil)
		return
	}

	if userID, ok := authenticatedUserID(r); ok && userID != req.UserID {
		sendError(w, http.StatusForbidden, "Token does not match user_id", nil)
		return
	}

	conversation, err := ch.conversationService.StartConversation(req.UserID)
	if err != nil {
		logger.Log.WithError(err).Error("Error starting conversation")
		sendError(w, http.StatusInternalServerError, "Error starting conversation", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StartChatResponse{ConversationID: conversation.ID})
}

// GetConversationsHandler lists a user's conversations
func (ch *ChatHandlers) GetConversationsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	if userID == "" {
		sendError(w, http.StatusBadRequest, "user_id is required", nil)
		return
	}

	if authUserID, ok := authenticatedUserID(r); ok && authUserID != userID {
		sendError(w, http.StatusForbidden, "Token does not match user_id", nil)
		return
	}

	conversations, err := ch.conversationService.GetUserConversations(userID)
	if err != nil {
		logger.Log.WithError(err).Error("Error retrieving conversations")
		sendError(w, http.StatusInternalServerError, "Error retrieving conversations", err)
		return
	}

	infos := make([]ConversationInfo, 0, len(conversations))
	for _, conv := range conversations {
		infos = append(infos, ConversationInfo{
			ID:        conv.ID,
			Title:     conv.Title,
			CreatedAt: conv.CreatedAt,
			UpdatedAt: conv.UpdatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ConversationsResponse{Conversations: infos})
}

// GetConversationMessagesHandler lists a conversation's messages in order
func (ch *ChatHandlers) GetConversationMessagesHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := r.PathValue("conversation_id")
	if conversationID == "" {
		sendError(w, http.StatusBadRequest, "conversation_id is required", nil)
		return
	}

	messages, err := ch.conversationService.GetConversationMessages(conversationID)
	if err != nil {
		logger.Log.WithError(err).Error("Error retrieving messages")
		sendError(w, http.StatusNotFound, "Error retrieving messages", err)
		return
	}

	data := make([]MessageData, 0, len(messages))
	for _, msg := range messages {
		data = append(data, MessageData{
			ID:        msg.ID,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt.String(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MessagesResponse{Messages: data})
}

// DeleteConversationHandler deletes a conversation owned by the caller
func (ch *ChatHandlers) DeleteConversationHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := r.PathValue("conversation_id")
	if conversationID == "" {
		sendError(w, http.StatusBadRequest, "conversation_id is required", nil)
		return
	}

	userID, ok := authenticatedUserID(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	if err := ch.conversationService.DeleteConversation(conversationID, userID); err != nil {
		logger.Log.WithError(err).Error("Error deleting conversation")
		sendError(w, http.StatusInternalServerError, "Error deleting conversation", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DeleteResponse{Success: true, Message: "Conversation deleted"})
}

// RegenerateTitleHandler rebuilds a conversation's title on demand
func (ch *ChatHandlers) RegenerateTitleHandler(w http.ResponseWriter, r *http.Request) {
	conversationID := r.PathValue("conversation_id")
	if conversationID == "" {
		sendError(w, http.StatusBadRequest, "conversation_id is required", nil)
		return
	}

	userID, ok := authenticatedUserID(r)
	if !ok {
		sendError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	title, err := ch.titleService.RegenerateTitle(r.Context(), conversationID, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Error regenerating title")
		sendError(w, http.StatusInternalServerError, "Error regenerating title", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TitleResponse{Title: title, ConversationID: conversationID})
}
