package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	generated := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	doc := Document{
		Profile: Profile{
			Name:     "Ava",
			Email:    "ava@example.com",
			Bio:      "learning to slow down",
			Location: "Oslo",
			JoinedAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		MoodLogs: []MoodLog{
			{Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Emoji: "😊", Note: "sunny morning"},
			{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Emoji: "😔"},
		},
		Diary: []DiaryEntry{
			{
				CreatedAt: time.Date(2026, 8, 27, 21, 0, 0, 0, time.UTC),
				Title:     "Long week",
				Content:   "Deadlines piled up but I managed.",
				Mood:      "😤",
				WordCount: 6,
			},
		},
		Summaries: []Summary{
			{CreatedAt: time.Date(2026, 8, 24, 8, 0, 0, 0, time.UTC), Period: "week", Text: "A steadier week than the last."},
		},
		GeneratedAt: generated,
	}

	text := doc.Render()

	assert.True(t, strings.HasPrefix(text, "MINDWELL DATA EXPORT\n"))
	assert.Contains(t, text, "Name: Ava")
	assert.Contains(t, text, "Bio: learning to slow down")
	assert.Contains(t, text, "Member since: 2026-01-15")
	assert.Contains(t, text, "MOOD LOGS (2)")
	assert.Contains(t, text, "2026-08-28  😊  sunny morning")
	assert.Contains(t, text, "2026-08-27  😔\n")
	assert.Contains(t, text, "DIARY ENTRIES (1)")
	assert.Contains(t, text, "[2026-08-27] Long week (mood: 😤)")
	assert.Contains(t, text, "(6 words)")
	assert.Contains(t, text, "AI SUMMARIES (1)")
	assert.Contains(t, text, "[2026-08-24] period week")
}

func TestRenderEmptySections(t *testing.T) {
	doc := Document{
		Profile:     Profile{Name: "Bo", Email: "bo@example.com", JoinedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		GeneratedAt: time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC),
	}

	text := doc.Render()

	assert.NotContains(t, text, "Bio:")
	assert.NotContains(t, text, "Location:")
	assert.Contains(t, text, "No mood logs recorded.")
	assert.Contains(t, text, "No diary entries recorded.")
	assert.Contains(t, text, "No summaries generated.")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "mindwell-export-2026-08-28.txt", Filename(time.Date(2026, 8, 28, 23, 0, 0, 0, time.UTC)))
}
