package insight

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// maxDiaryEntries caps how many entries feed the summary prompt.
	maxDiaryEntries = 10
	// diaryExcerptRunes bounds each entry excerpt inside the prompt.
	diaryExcerptRunes = 200
)

// MoodLine is one mood log flattened for prompt assembly.
type MoodLine struct {
	Date  time.Time
	Emoji string
	Note  *string
}

// DiaryLine is one diary entry flattened for prompt assembly.
type DiaryLine struct {
	Title   string
	Content string
}

func formatMoodLines(moods []MoodLine) string {
	if len(moods) == 0 {
		return "No mood logs found"
	}
	lines := make([]string, 0, len(moods))
	for _, m := range moods {
		note := "no note"
		if m.Note != nil && *m.Note != "" {
			note = *m.Note
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%s)", m.Date.Format("2006-01-02"), m.Emoji, note))
	}
	return strings.Join(lines, "\n")
}

func formatDiaryLines(entries []DiaryLine) string {
	if len(entries) == 0 {
		return "No diary entries found"
	}
	if len(entries) > maxDiaryEntries {
		entries = entries[:maxDiaryEntries]
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		excerpt := e.Content
		if runes := []rune(excerpt); len(runes) > diaryExcerptRunes {
			excerpt = string(runes[:diaryExcerptRunes])
		}
		lines = append(lines, fmt.Sprintf("%s: %s...", e.Title, excerpt))
	}
	return strings.Join(lines, "\n")
}

// SummaryPrompt builds the period-summary prompt. The model is asked
// for a short narrative plus exactly three recommendations in a
// marker-delimited format that ParseSummaryResponse understands.
func SummaryPrompt(period string, moods []MoodLine, entries []DiaryLine) string {
	return fmt.Sprintf(`Based on the following user's mental health data from the last %s, generate a personalized wellness summary (60-100 words) followed by exactly 3 specific, actionable recommendations for improving mental health.

Mood Logs:
%s

Diary Entries:
%s

Please provide:
1. A personalized summary (60-100 words) of their mental health patterns and progress
2. Exactly 3 specific, actionable recommendations for improving their mental health

Format your response as:
SUMMARY: [your 60-100 word summary]
RECOMMENDATIONS:
1. [first recommendation]
2. [second recommendation]
3. [third recommendation]`, period, formatMoodLines(moods), formatDiaryLines(entries))
}

// RecommendationPrompt builds the standalone recommendations prompt.
// Recent rows are embedded as JSON so the model sees the raw shape of
// the data rather than a lossy narration of it.
func RecommendationPrompt(source, context string, recentMoods, recentEntries, recentConcerns any) string {
	if context == "" {
		context = "General wellness recommendations"
	}
	return fmt.Sprintf(`Based on this user's recent wellness data, generate 3-4 specific, actionable recommendations for improving their mental wellbeing.

Recent data:
- Mood logs: %s
- Diary entries: %s
- Recent concerns: %s

Source: %s
Context: %s

Provide practical, evidence-based suggestions that are:
1. Specific and actionable
2. Appropriate for their current state
3. Focused on mental health and wellbeing
4. Realistic to implement

Return as a JSON array of strings, each recommendation being 15-30 words.`,
		mustJSON(recentMoods), mustJSON(recentEntries), mustJSON(recentConcerns), source, context)
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
