package search

import (
	"strings"
	"testing"
)

func TestSummary_ZeroOutcome(t *testing.T) {
	var o Outcome
	if got := o.Summary(); got != NoDataAvailable {
		t.Errorf("Expected %q, got %q", NoDataAvailable, got)
	}
}

func TestSummary_FailedOutcome(t *testing.T) {
	o := Outcome{
		Text: "this text must not leak",
		Err:  &SearchError{Reason: "search API returned status 503"},
	}
	if got := o.Summary(); got != NoDataAvailable {
		t.Errorf("Expected %q for failed outcome, got %q", NoDataAvailable, got)
	}
}

func TestSummary_PrefersText(t *testing.T) {
	o := Outcome{
		Text:       "Here are some great movers in Austin.",
		Businesses: []Business{{Name: "Austin Movers"}},
	}
	if got := o.Summary(); got != "Here are some great movers in Austin." {
		t.Errorf("Expected freeform text, got %q", got)
	}
}

func TestSummary_FormatsBusinesses(t *testing.T) {
	o := Outcome{
		Businesses: []Business{
			{Name: "Franklin Barbecue", Rating: 4.5, ReviewCount: 6000, Address: "900 E 11th St, Austin, TX", URL: "https://yelp.com/biz/franklin"},
			{Name: "   "},
			{Name: "Uchi"},
		},
	}

	got := o.Summary()
	if !strings.Contains(got, "- Franklin Barbecue (4.5 stars, 6000 reviews), 900 E 11th St, Austin, TX https://yelp.com/biz/franklin") {
		t.Errorf("Unexpected first line: %q", got)
	}
	if !strings.Contains(got, "- Uchi") {
		t.Errorf("Expected unrated entry without rating suffix: %q", got)
	}
	if strings.Count(got, "- ") != 2 {
		t.Errorf("Expected blank-named entry skipped: %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("Expected no trailing newline")
	}
}

func TestSummary_BlankNamesOnly(t *testing.T) {
	o := Outcome{Businesses: []Business{{Name: ""}, {Name: "  "}}}
	if got := o.Summary(); got != NoDataAvailable {
		t.Errorf("Expected %q when no entry has a name, got %q", NoDataAvailable, got)
	}
}

func TestSummary_TruncatesLongText(t *testing.T) {
	o := Outcome{Text: strings.Repeat("é", maxSummaryLength+50)}

	got := o.Summary()
	if runes := len([]rune(got)); runes != maxSummaryLength {
		t.Errorf("Expected %d runes, got %d", maxSummaryLength, runes)
	}
	if !strings.HasPrefix(o.Text, got) {
		t.Error("Expected truncation to preserve the prefix")
	}
}

func TestSummary_WhitespaceOnlyText(t *testing.T) {
	o := Outcome{Text: "   \n\t  "}
	if got := o.Summary(); got != NoDataAvailable {
		t.Errorf("Expected %q for whitespace-only text, got %q", NoDataAvailable, got)
	}
}

func TestSearchError_Error(t *testing.T) {
	e := &SearchError{Reason: "search request failed"}
	if e.Error() != "search request failed" {
		t.Errorf("Unexpected error string: %q", e.Error())
	}
}
