package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"movemate/internal/app"
	"movemate/internal/logger"
	"movemate/internal/repository/db"
	"movemate/internal/service/intent"
	"movemate/internal/service/llm"
	"movemate/internal/service/search"
	"movemate/internal/service/title"

	"github.com/sirupsen/logrus"
)

// followUpHistoryWindow bounds the prior messages fed into the
// business-lookup extraction on the follow-up path.
const followUpHistoryWindow = 6

// TurnRequest contains all the parameters needed to process one chat turn
type TurnRequest struct {
	Message        string
	ConversationID string
	UserID         string
	Model          string
	Temperature    *float64
	Latitude       *float64
	Longitude      *float64
}

// TurnResponse contains the result of a processed turn
type TurnResponse struct {
	Response       string
	ConversationID string
	Intent         string
	// Title is set only when this turn generated a conversation title.
	Title *string
}

// ChatService is the turn handler: it classifies the incoming message,
// drives the enrichment fan-out, assembles prompts, and persists the turn.
type ChatService struct {
	db            db.Database
	config        *app.Config
	llmProvider   llm.LLMProvider
	searchClient  search.Client
	titleService  *title.TitleService
	searchTimeout time.Duration
}

// NewChatService creates a new ChatService
func NewChatService(config *app.Config) *ChatService {
	return &ChatService{
		db:            config.DB,
		config:        config,
		llmProvider:   config.LLMProvider,
		searchClient:  config.SearchClient,
		titleService:  title.NewTitleService(config.DB, config.LLMProvider),
		searchTimeout: config.AppConfig.Search.Timeout,
	}
}

// HandleTurn processes one user message and returns the assistant's reply.
// The user message is persisted before the completion call, so history is
// not lost when a downstream call fails.
func (s *ChatService) HandleTurn(ctx context.Context, req TurnRequest) (*TurnResponse, error) {
	conversation, err := s.getOrCreateConversation(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get/create conversation: %w", err)
	}

	if conversation.UserID != req.UserID {
		return nil, fmt.Errorf("unauthorized: user does not own this conversation")
	}

	if err := s.validateModel(req.Model); err != nil {
		return nil, fmt.Errorf("invalid model: %w", err)
	}

	history, err := s.db.GetConversationMessages(conversation.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversation history: %w", err)
	}
	priorCount := len(history)

	turnIntent := intent.Classify(req.Message, priorCount)

	logger.Log.WithFields(logrus.Fields{
		"conversation_id": conversation.ID,
		"intent":          turnIntent.String(),
		"prior_messages":  priorCount,
	}).Info("Classified chat turn")

	// Persist the inbound message first: even if the turn fails downstream,
	// conversation history keeps the user's message.
	if _, err := s.db.AddMessage(conversation.ID, db.RoleUser, req.Message); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	var reply string
	switch turnIntent {
	case intent.IntentMovingRequest:
		reply, err = s.handleMovingRequest(ctx, conversation.ID, req)
	case intent.IntentBusinessFollowUp:
		reply, err = s.handleBusinessFollowUp(ctx, conversation.ID, history, req)
	default:
		reply, err = s.handleGeneralChat(ctx, history, req)
	}
	if err != nil {
		return nil, fmt.Errorf("LLM error: %w", err)
	}

	if _, err := s.db.AddMessage(conversation.ID, db.RoleAssistant, reply); err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}

	// Title generation runs only on a conversation's first turn. A failed
	// generation is reported as an absent title, never a failed turn.
	var generatedTitle *string
	if priorCount == 0 {
		if t, err := s.titleService.GenerateTitle(ctx, conversation.ID, req.Message); err != nil {
			logger.Log.WithError(err).Warn("Title generation failed")
		} else {
			generatedTitle = &t
		}
	}

	return &TurnResponse{
		Response:       reply,
		ConversationID: conversation.ID,
		Intent:         turnIntent.String(),
		Title:          generatedTitle,
	}, nil
}

// handleMovingRequest runs the full moving-plan path: extract the two
// cities, fan out the seven enrichment queries concurrently, then ask for
// the seven-section plan over their summaries.
func (s *ChatService) handleMovingRequest(ctx context.Context, conversationID string, req TurnRequest) (string, error) {
	origin, destination := s.extractCities(ctx, req.Message)

	queries := movingPlanQueries(origin, destination)
	summaries := s.fanOutQueries(ctx, conversationID, queries, s.userContext(req))

	var block strings.Builder
	for i, q := range queries {
		fmt.Fprintf(&block, "### %s\n%s\n\n", q.Heading, summaries[i])
	}

	messages := []llm.Message{
		{Role: db.RoleUser, Content: movingPlanUserPrompt(origin, destination, block.String())},
	}

	return s.llmProvider.ChatWithHistory(ctx, messages, movingPlanSystemPrompt, req.Model, s.temperature(req))
}

// handleBusinessFollowUp infers one business type and location from recent
// history, issues a single enrichment query, and replies over the full
// history plus the injected search summary.
func (s *ChatService) handleBusinessFollowUp(ctx context.Context, conversationID string, history []llm.Message, req TurnRequest) (string, error) {
	queryText := s.extractBusinessLookup(ctx, history, req.Message)

	searchCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
	defer cancel()
	outcome := s.searchClient.Query(searchCtx, queryText, search.QueryContext{
		ChatID: conversationID,
		User:   s.userContext(req),
	})
	if outcome.Failed() {
		logger.Log.WithFields(logrus.Fields{
			"conversation_id": conversationID,
			"query":           queryText,
		}).WithError(outcome.Err).Warn("Follow-up enrichment query failed")
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{
		Role:    db.RoleSystem,
		Content: fmt.Sprintf("Local business data for %q:\n%s", queryText, outcome.Summary()),
	})
	messages = append(messages, llm.Message{Role: db.RoleUser, Content: req.Message})

	return s.llmProvider.ChatWithHistory(ctx, messages, followUpSystemPrompt, req.Model, s.temperature(req))
}

// handleGeneralChat replies over the history with no enrichment.
func (s *ChatService) handleGeneralChat(ctx context.Context, history []llm.Message, req TurnRequest) (string, error) {
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: db.RoleUser, Content: req.Message})

	return s.llmProvider.ChatWithHistory(ctx, messages, generalSystemPrompt, req.Model, s.temperature(req))
}

// fanOutQueries issues the enrichment queries concurrently and waits for
// all of them to settle. A failed query degrades to its placeholder
// summary; it never aborts the turn.
func (s *ChatService) fanOutQueries(ctx context.Context, conversationID string, queries []enrichmentQuery, uctx *search.UserContext) []string {
	summaries := make([]string, len(queries))

	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q enrichmentQuery) {
			defer wg.Done()

			queryCtx, cancel := context.WithTimeout(ctx, s.searchTimeout)
			defer cancel()

			outcome := s.searchClient.Query(queryCtx, q.Text, search.QueryContext{
				ChatID: conversationID,
				User:   uctx,
			})
			if outcome.Failed() {
				logger.Log.WithFields(logrus.Fields{
					"conversation_id": conversationID,
					"category":        q.Category,
				}).WithError(outcome.Err).Warn("Enrichment query failed, degrading to placeholder")
			}
			summaries[i] = outcome.Summary()
		}(i, q)
	}
	wg.Wait()

	return summaries
}

// extractCities pulls {origin, destination} from the message, defaulting
// missing or failed fields to the literal placeholders.
func (s *ChatService) extractCities(ctx context.Context, message string) (string, string) {
	origin, destination := defaultOrigin, defaultDestination

	fields, err := s.llmProvider.ExtractStructured(ctx, originDestinationPrompt(message), []string{"origin", "destination"})
	if err != nil {
		logger.Log.WithError(err).Warn("City extraction failed, using placeholders")
		return origin, destination
	}

	if v := strings.TrimSpace(fields["origin"]); v != "" {
		origin = v
	}
	if v := strings.TrimSpace(fields["destination"]); v != "" {
		destination = v
	}
	return origin, destination
}

// extractBusinessLookup infers {business_type, location} from the last few
// prior messages plus the current one and composes the query text. On
// extraction failure the raw message is used as the query.
func (s *ChatService) extractBusinessLookup(ctx context.Context, history []llm.Message, message string) string {
	recent := history
	if len(recent) > followUpHistoryWindow {
		recent = recent[len(recent)-followUpHistoryWindow:]
	}

	var transcript strings.Builder
	for _, m := range recent {
		fmt.Fprintf(&transcript, "%s: %s\n", m.Role, m.Content)
	}
	fmt.Fprintf(&transcript, "%s: %s\n", db.RoleUser, message)

	fields, err := s.llmProvider.ExtractStructured(ctx, businessLookupPrompt(transcript.String()), []string{"business_type", "location"})
	if err != nil {
		logger.Log.WithError(err).Warn("Business lookup extraction failed, querying raw message")
		return message
	}

	businessType := strings.TrimSpace(fields["business_type"])
	location := strings.TrimSpace(fields["location"])
	if businessType == "" {
		return message
	}
	if location == "" {
		return businessType
	}
	return fmt.Sprintf("%s in %s", businessType, location)
}

// getOrCreateConversation retrieves an existing conversation or creates a
// new one with a placeholder title.
func (s *ChatService) getOrCreateConversation(req TurnRequest) (*db.Conversation, error) {
	if req.ConversationID != "" {
		return s.db.GetConversation(req.ConversationID)
	}
	return s.db.CreateConversation(req.UserID, "New Conversation")
}

// validateModel checks if the provided model ID is valid
func (s *ChatService) validateModel(modelID string) error {
	if modelID != "" && !s.config.ModelsConfig().IsValidModel(modelID) {
		return fmt.Errorf("invalid model specified")
	}
	return nil
}

func (s *ChatService) temperature(req TurnRequest) *float64 {
	if req.Temperature != nil {
		return req.Temperature
	}
	t := s.config.AppConfig.LLM.Temperature
	return &t
}

func (s *ChatService) userContext(req TurnRequest) *search.UserContext {
	if req.Latitude == nil || req.Longitude == nil {
		return nil
	}
	return &search.UserContext{
		Locale:    s.config.AppConfig.Search.Locale,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}
}
