// Package companion provides the keyword-matched wellness replies used
// when no LLM provider is configured or a provider call fails, so the
// chat never leaves a user message unanswered.
package companion

import "strings"

type cannedReply struct {
	keywords []string
	reply    string
}

// Ordered: first matching rule wins.
var cannedReplies = []cannedReply{
	{
		keywords: []string{"stress", "anxious"},
		reply:    "I understand you're feeling stressed. Try this breathing exercise: Breathe in for 4 counts, hold for 4, breathe out for 6. Repeat 3 times. Remember, it's okay to feel this way, and this feeling will pass. Would you like me to guide you through a longer relaxation technique?",
	},
	{
		keywords: []string{"happy", "good", "great"},
		reply:    "That's wonderful to hear! I'm so glad you're feeling positive today. These good moments are precious - consider taking a moment to really savor this feeling. What specifically is making you feel good today?",
	},
	{
		keywords: []string{"sad", "down", "upset"},
		reply:    "I'm sorry you're going through a difficult time. Your feelings are valid, and it's important to acknowledge them. Sometimes talking helps - would you like to share more about what's troubling you? Or perhaps we could explore some gentle activities that might help lift your spirits?",
	},
	{
		keywords: []string{"mindful", "meditation"},
		reply:    "Mindfulness is a powerful practice! Here's a simple technique: Find a comfortable position and focus on your breath. When thoughts arise, gently acknowledge them and return your attention to breathing. Even 5 minutes can make a difference. Would you like me to guide you through a specific mindfulness exercise?",
	},
	{
		keywords: []string{"sleep", "tired"},
		reply:    "Good sleep is crucial for mental health. Try establishing a bedtime routine: dim lights 1 hour before bed, avoid screens, and consider gentle stretching or reading. Creating a cool, dark environment can also help. How has your sleep been lately?",
	},
}

const defaultReply = "Thank you for sharing that with me. I'm here to listen and support you. Every step in your wellness journey matters, no matter how small. Is there anything specific you'd like to explore or discuss about your mental health today?"

// Reply picks the canned response for a user message by substring
// keyword match, case-insensitively.
func Reply(message string) string {
	lower := strings.ToLower(message)
	for _, c := range cannedReplies {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.reply
			}
		}
	}
	return defaultReply
}
