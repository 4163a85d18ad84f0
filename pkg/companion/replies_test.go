package companion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"stress keyword", "I'm so STRESSED about work", "breathing exercise"},
		{"anxious keyword", "feeling anxious again", "breathing exercise"},
		{"positive keyword", "today was a good day", "wonderful to hear"},
		{"sad keyword", "I feel down lately", "difficult time"},
		{"mindfulness keyword", "teach me meditation", "Mindfulness is a powerful practice"},
		{"sleep keyword", "I'm tired all the time", "Good sleep is crucial"},
		{"no keyword", "what's the weather like", "Thank you for sharing"},
		{"empty message", "", "Thank you for sharing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Reply(tt.message), tt.contains)
		})
	}
}

func TestReplyFirstRuleWins(t *testing.T) {
	// "stressed but in a good way" matches both the stress and the
	// positive rule; stress is checked first.
	assert.Contains(t, Reply("stressed but in a good way"), "breathing exercise")
}
