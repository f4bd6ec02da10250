package intent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		priorMessages int
		want          Intent
	}{
		{
			name:          "moving request on first turn",
			text:          "I want to move from Austin to Denver",
			priorMessages: 0,
			want:          IntentMovingRequest,
		},
		{
			name:          "moving request after greeting exchange",
			text:          "Help me relocate to Seattle",
			priorMessages: 1,
			want:          IntentMovingRequest,
		},
		{
			name:          "moving keyword too deep into conversation",
			text:          "We might move again next year",
			priorMessages: 4,
			want:          IntentGeneralChat,
		},
		{
			name:          "business follow-up mid conversation",
			text:          "What's a good restaurant there?",
			priorMessages: 3,
			want:          IntentBusinessFollowUp,
		},
		{
			name:          "business keyword on first turn stays general",
			text:          "Find me a good restaurant",
			priorMessages: 0,
			want:          IntentGeneralChat,
		},
		{
			name:          "moving beats business on overlap",
			text:          "I'm moving and need mover recommendations",
			priorMessages: 1,
			want:          IntentMovingRequest,
		},
		{
			name:          "case insensitive",
			text:          "I WANT TO RELOCATE",
			priorMessages: 0,
			want:          IntentMovingRequest,
		},
		{
			name:          "plain chat",
			text:          "hello!",
			priorMessages: 0,
			want:          IntentGeneralChat,
		},
		{
			name:          "plain chat later on",
			text:          "thanks, that helps",
			priorMessages: 6,
			want:          IntentGeneralChat,
		},
		{
			name:          "things to do phrasing",
			text:          "any things to do around town?",
			priorMessages: 2,
			want:          IntentBusinessFollowUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.text, tt.priorMessages))
		})
	}
}

func TestIntentString(t *testing.T) {
	require.Equal(t, "moving_request", IntentMovingRequest.String())
	require.Equal(t, "business_follow_up", IntentBusinessFollowUp.String())
	require.Equal(t, "general_chat", IntentGeneralChat.String())
	require.Equal(t, "general_chat", Intent(42).String())
}
