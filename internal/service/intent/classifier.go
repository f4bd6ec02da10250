package intent

import "strings"

// Intent routes a free-text turn to one of a small closed set of
// handling strategies.
type Intent int

const (
	// IntentGeneralChat is plain conversation with no enrichment.
	IntentGeneralChat Intent = iota
	// IntentMovingRequest is the first real turn of a relocation request.
	IntentMovingRequest
	// IntentBusinessFollowUp asks for local-business recommendations
	// within an ongoing conversation.
	IntentBusinessFollowUp
)

func (i Intent) String() string {
	switch i {
	case IntentMovingRequest:
		return "moving_request"
	case IntentBusinessFollowUp:
		return "business_follow_up"
	default:
		return "general_chat"
	}
}

// Keyword sets for the heuristic classifier. Substring match,
// case-insensitive. False positives are expected and acceptable.
var movingKeywords = []string{
	"move",
	"moving",
	"relocate",
	"relocation",
}

var businessKeywords = []string{
	"restaurant",
	"food",
	"eat",
	"mover",
	"apartment",
	"housing",
	"storage",
	"furniture",
	"cleaning",
	"activity",
	"activities",
	"things to do",
	"recommend",
	"suggest",
	"find",
	"best",
	"where",
}

// Classify decides how a message should be handled. A moving request
// only applies on the first real turn (at most one prior stored message)
// and takes priority over a business follow-up. A business follow-up
// requires at least one prior message.
func Classify(text string, priorMessages int) Intent {
	lower := strings.ToLower(text)

	if priorMessages <= 1 && containsAny(lower, movingKeywords) {
		return IntentMovingRequest
	}

	if priorMessages >= 1 && containsAny(lower, businessKeywords) {
		return IntentBusinessFollowUp
	}

	return IntentGeneralChat
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
