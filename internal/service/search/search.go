package search

import (
	"context"
	"fmt"
	"strings"

	"movemate/internal/config"
)

// NoDataAvailable is the placeholder summary used whenever a usable
// summary cannot be extracted from an outcome.
const NoDataAvailable = "No data available"

// maxSummaryLength bounds the text included in downstream prompts.
const maxSummaryLength = 1000

// UserContext localizes search results. It is ephemeral and never persisted.
type UserContext struct {
	Locale    string  `json:"locale,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// QueryContext carries optional per-query context for the provider.
type QueryContext struct {
	// ChatID is the provider-side conversation-continuation token.
	ChatID string
	User   *UserContext
}

// SearchError carries the upstream failure reason. Clients convert all
// transport and status errors into a SearchError and return normally.
type SearchError struct {
	Reason string
	Cause  error
}

func (e *SearchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Cause)
	}
	return e.Reason
}

func (e *SearchError) Unwrap() error {
	return e.Cause
}

// Business is a single structured business entry from either provider.
type Business struct {
	Name        string  `json:"name"`
	URL         string  `json:"url,omitempty"`
	Address     string  `json:"address,omitempty"`
	Price       string  `json:"price,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	ReviewCount int     `json:"review_count,omitempty"`
}

// Outcome is the result of a single business-search query: either a
// success payload (freeform text, structured entries, or both) or a
// SearchError. A zero Outcome summarizes to NoDataAvailable.
type Outcome struct {
	Text       string
	Businesses []Business
	Err        *SearchError
}

// Failed reports whether the query produced an error instead of a payload.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Summary extracts a bounded-length textual summary for prompt assembly.
// It never fails: any malformed or absent payload yields NoDataAvailable.
func (o Outcome) Summary() string {
	if o.Err != nil {
		return NoDataAvailable
	}

	if text := strings.TrimSpace(o.Text); text != "" {
		return truncate(text, maxSummaryLength)
	}

	if len(o.Businesses) > 0 {
		var sb strings.Builder
		for _, b := range o.Businesses {
			if strings.TrimSpace(b.Name) == "" {
				continue
			}
			sb.WriteString("- ")
			sb.WriteString(b.Name)
			if b.Rating > 0 {
				fmt.Fprintf(&sb, " (%.1f stars, %d reviews)", b.Rating, b.ReviewCount)
			}
			if b.Address != "" {
				sb.WriteString(", ")
				sb.WriteString(b.Address)
			}
			if b.URL != "" {
				sb.WriteString(" ")
				sb.WriteString(b.URL)
			}
			sb.WriteString("\n")
		}
		if sb.Len() > 0 {
			return truncate(strings.TrimRight(sb.String(), "\n"), maxSummaryLength)
		}
	}

	return NoDataAvailable
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// Client is the uniform fail-soft query contract over the business-search
// providers. Query never returns a Go error: failures are carried inside
// the Outcome so a failed category degrades instead of aborting a turn.
type Client interface {
	Query(ctx context.Context, text string, qc QueryContext) Outcome
}

// NewClient creates the configured business-search client.
func NewClient(cfg *config.SearchConfig) Client {
	if cfg.Mode == "fusion" {
		return NewFusionClient(cfg)
	}
	return NewAIClient(cfg)
}
