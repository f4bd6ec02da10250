package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"movemate/internal/config"
	"movemate/internal/logger"

	"github.com/sirupsen/logrus"
)

const yelpAIChatURL = "https://api.yelp.com/ai/chat/v2"

// AIClient queries the conversational Yelp AI endpoint: free-text query in,
// freeform text plus structured business entries out.
type AIClient struct {
	config  *config.SearchConfig
	baseURL string
	client  *http.Client
}

// NewAIClient creates a client for the Yelp AI chat endpoint
func NewAIClient(cfg *config.SearchConfig) *AIClient {
	return &AIClient{
		config:  cfg,
		baseURL: yelpAIChatURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type aiChatRequest struct {
	Query       string          `json:"query"`
	ChatID      string          `json:"chat_id"`
	UserContext json.RawMessage `json:"user_context"`
}

type aiChatResponse struct {
	ChatID   string `json:"chat_id"`
	Response struct {
		Text string `json:"text"`
	} `json:"response"`
	Entities []struct {
		Businesses []struct {
			Name        string  `json:"name"`
			URL         string  `json:"url"`
			Price       string  `json:"price"`
			Rating      float64 `json:"rating"`
			ReviewCount int     `json:"review_count"`
			Location    struct {
				FormattedAddress string `json:"formatted_address"`
			} `json:"location"`
		} `json:"businesses"`
	} `json:"entities"`
}

// Query sends a free-text query to the Yelp AI endpoint. All transport and
// status failures come back inside the Outcome.
func (c *AIClient) Query(ctx context.Context, text string, qc QueryContext) Outcome {
	userContext := json.RawMessage(`{}`)
	if qc.User != nil {
		uctx := *qc.User
		if uctx.Locale == "" {
			uctx.Locale = c.config.Locale
		}
		if data, err := json.Marshal(uctx); err == nil {
			userContext = data
		}
	}

	reqBody := aiChatRequest{
		Query:       text,
		ChatID:      qc.ChatID,
		UserContext: userContext,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return failure("error marshaling search request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return failure("error creating search request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.YelpAPIKey)

	logger.Log.WithField("query", text).Debug("Calling Yelp AI API")

	resp, err := c.client.Do(req)
	if err != nil {
		return failure("search request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return failure(fmt.Sprintf("search API returned status %d: %s", resp.StatusCode, string(body)), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure("error reading search response", err)
	}

	var aiResp aiChatResponse
	if err := json.Unmarshal(body, &aiResp); err != nil {
		return failure("error decoding search response", err)
	}

	var businesses []Business
	for _, entity := range aiResp.Entities {
		for _, b := range entity.Businesses {
			businesses = append(businesses, Business{
				Name:        b.Name,
				URL:         b.URL,
				Address:     b.Location.FormattedAddress,
				Price:       b.Price,
				Rating:      b.Rating,
				ReviewCount: b.ReviewCount,
			})
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"query":          text,
		"business_count": len(businesses),
		"text_chars":     len(aiResp.Response.Text),
	}).Debug("Yelp AI API response received")

	return Outcome{
		Text:       aiResp.Response.Text,
		Businesses: businesses,
	}
}

func failure(reason string, cause error) Outcome {
	if cause != nil {
		logger.Log.WithError(cause).Warn(reason)
	} else {
		logger.Log.Warn(reason)
	}
	return Outcome{Err: &SearchError{Reason: reason, Cause: cause}}
}
