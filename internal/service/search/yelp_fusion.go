package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"movemate/internal/config"
	"movemate/internal/logger"

	"github.com/sirupsen/logrus"
)

const yelpSearchURL = "https://api.yelp.com/v3/businesses/search"

// searchLimit caps the number of business entries requested per query.
const searchLimit = 5

// FusionClient queries the structured Yelp Fusion search endpoint:
// term plus location in, a list of business entries out.
type FusionClient struct {
	config  *config.SearchConfig
	baseURL string
	client  *http.Client
}

// NewFusionClient creates a client for the Yelp Fusion search endpoint
func NewFusionClient(cfg *config.SearchConfig) *FusionClient {
	return &FusionClient{
		config:  cfg,
		baseURL: yelpSearchURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type fusionResponse struct {
	Businesses []struct {
		Name        string  `json:"name"`
		URL         string  `json:"url"`
		Price       string  `json:"price"`
		Rating      float64 `json:"rating"`
		ReviewCount int     `json:"review_count"`
		Location    struct {
			DisplayAddress []string `json:"display_address"`
		} `json:"location"`
	} `json:"businesses"`
}

// Query satisfies the Client contract by splitting a free-text query of the
// form "<term> in <location>" into a structured search. Queries without a
// location part search the term alone against the configured locale.
func (c *FusionClient) Query(ctx context.Context, text string, qc QueryContext) Outcome {
	term := text
	location := ""
	if idx := strings.LastIndex(strings.ToLower(text), " in "); idx >= 0 {
		term = strings.TrimSpace(text[:idx])
		location = strings.TrimSpace(text[idx+4:])
	}
	return c.Search(ctx, term, location, 0)
}

// Search queries the structured endpoint directly. A price of 1-4 filters
// by price tier; 0 leaves the filter off. Failures come back inside the
// Outcome rather than as an error.
func (c *FusionClient) Search(ctx context.Context, term, location string, price int) Outcome {
	params := url.Values{}
	params.Set("term", term)
	params.Set("location", location)
	params.Set("limit", strconv.Itoa(searchLimit))
	if price >= 1 && price <= 4 {
		params.Set("price", strconv.Itoa(price))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return failure("error creating search request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.YelpAPIKey)

	logger.Log.WithFields(logrus.Fields{
		"term":     term,
		"location": location,
	}).Debug("Calling Yelp Fusion API")

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

	var searchResp fusionResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return failure("error decoding search response", err)
	}

	businesses := make([]Business, 0, len(searchResp.Businesses))
	for _, b := range searchResp.Businesses {
		businesses = append(businesses, Business{
			Name:        b.Name,
			URL:         b.URL,
			Address:     strings.Join(b.Location.DisplayAddress, ", "),
			Price:       b.Price,
			Rating:      b.Rating,
			ReviewCount: b.ReviewCount,
		})
	}

	logger.Log.WithFields(logrus.Fields{
		"term":           term,
		"location":       location,
		"business_count": len(businesses),
	}).Debug("Yelp Fusion API response received")

	return Outcome{Businesses: businesses}
}
