package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestFusionClient_Query_SplitsTermAndLocation(t *testing.T) {
	var captured url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"businesses": [{
			"name": "Uchi",
			"url": "https://yelp.com/biz/uchi",
			"price": "$$$",
			"rating": 4.5,
			"review_count": 3000,
			"location": {"display_address": ["801 S Lamar Blvd", "Austin, TX 78704"]}
		}]}`))
	}))
	defer server.Close()

	cfg := testSearchConfig()
	cfg.Mode = "fusion"
	client := NewFusionClient(cfg)
	client.baseURL = server.URL

	outcome := client.Query(context.Background(), "best restaurants in Austin", QueryContext{})

	if outcome.Failed() {
		t.Fatalf("Expected success, got error: %v", outcome.Err)
	}
	if got := captured.Get("term"); got != "best restaurants" {
		t.Errorf("Unexpected term: %q", got)
	}
	if got := captured.Get("location"); got != "Austin" {
		t.Errorf("Unexpected location: %q", got)
	}
	if got := captured.Get("limit"); got != "5" {
		t.Errorf("Unexpected limit: %q", got)
	}
	if captured.Has("price") {
		t.Error("Expected no price filter by default")
	}

	if len(outcome.Businesses) != 1 {
		t.Fatalf("Expected 1 business, got %d", len(outcome.Businesses))
	}
	if got := outcome.Businesses[0].Address; got != "801 S Lamar Blvd, Austin, TX 78704" {
		t.Errorf("Expected joined display address, got %q", got)
	}
}

func TestFusionClient_Query_NoLocationPart(t *testing.T) {
	var captured url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		w.Write([]byte(`{"businesses": []}`))
	}))
	defer server.Close()

	cfg := testSearchConfig()
	client := NewFusionClient(cfg)
	client.baseURL = server.URL

	outcome := client.Query(context.Background(), "coffee shops", QueryContext{})

	if outcome.Failed() {
		t.Fatalf("Expected success, got error: %v", outcome.Err)
	}
	if got := captured.Get("term"); got != "coffee shops" {
		t.Errorf("Unexpected term: %q", got)
	}
	if got := captured.Get("location"); got != "" {
		t.Errorf("Expected empty location, got %q", got)
	}
}

func TestFusionClient_Search_PriceFilter(t *testing.T) {
	var captured url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		w.Write([]byte(`{"businesses": []}`))
	}))
	defer server.Close()

	cfg := testSearchConfig()
	client := NewFusionClient(cfg)
	client.baseURL = server.URL

	client.Search(context.Background(), "movers", "Austin", 2)
	if got := captured.Get("price"); got != "2" {
		t.Errorf("Expected price filter 2, got %q", got)
	}

	client.Search(context.Background(), "movers", "Austin", 9)
	if captured.Has("price") {
		t.Error("Expected out-of-range price filter dropped")
	}
}

func TestFusionClient_Search_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"code": "LOCATION_NOT_FOUND"}}`))
	}))
	defer server.Close()

	cfg := testSearchConfig()
	client := NewFusionClient(cfg)
	client.baseURL = server.URL

	outcome := client.Search(context.Background(), "movers", "Nowhereville", 0)

	if !outcome.Failed() {
		t.Fatal("Expected failed outcome for 400 response")
	}
	if outcome.Summary() != NoDataAvailable {
		t.Errorf("Expected placeholder summary, got %q", outcome.Summary())
	}
}

func TestNewClient_ModeSelection(t *testing.T) {
	cfg := testSearchConfig()

	if _, ok := NewClient(cfg).(*AIClient); !ok {
		t.Error("Expected AI client for ai mode")
	}

	cfg.Mode = "fusion"
	if _, ok := NewClient(cfg).(*FusionClient); !ok {
		t.Error("Expected Fusion client for fusion mode")
	}
}
