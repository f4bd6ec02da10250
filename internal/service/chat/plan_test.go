package chat

import (
	"fmt"
	"strings"
	"testing"
)

func TestMovingPlanQueries(t *testing.T) {
	queries := movingPlanQueries("Austin", "Denver")

	if len(queries) != 7 {
		t.Fatalf("Expected 7 queries, got %d", len(queries))
	}

	seen := make(map[string]bool)
	for _, q := range queries {
		if seen[q.Category] {
			t.Errorf("Duplicate category %q", q.Category)
		}
		seen[q.Category] = true

		if q.Heading == "" || q.Text == "" {
			t.Errorf("Category %q has empty heading or text", q.Category)
		}
		if !strings.Contains(q.Text, "Austin") && !strings.Contains(q.Text, "Denver") {
			t.Errorf("Category %q query has no city: %q", q.Category, q.Text)
		}
	}

	// movers and storage are searched at the origin, the rest at the destination
	for _, q := range queries {
		wantCity := "Denver"
		if q.Category == "movers" || q.Category == "storage" {
			wantCity = "Austin"
		}
		if !strings.Contains(q.Text, wantCity) {
			t.Errorf("Category %q expected city %q, got query %q", q.Category, wantCity, q.Text)
		}
	}
}

func TestMovingPlanSystemPromptSections(t *testing.T) {
	for i := 1; i <= 7; i++ {
		header := fmt.Sprintf("## Step %d", i)
		if !strings.Contains(movingPlanSystemPrompt, header) {
			t.Errorf("Expected plan prompt to mandate %q", header)
		}
	}
}
