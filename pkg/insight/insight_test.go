package insight

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidPeriod(t *testing.T) {
	for _, p := range []string{"7d", "30d", "90d", "1y", "week"} {
		assert.True(t, ValidPeriod(p), p)
	}
	assert.False(t, ValidPeriod("14d"))
	assert.False(t, ValidPeriod(""))
}

func TestPeriodStart(t *testing.T) {
	// A Friday.
	now := time.Date(2026, 8, 28, 15, 4, 0, 0, time.UTC)

	start, err := PeriodStart("30d", now)
	assert.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -30), start)

	_, err = PeriodStart("2w", now)
	assert.Error(t, err)
}

func TestPeriodStartWeekAlignsToMonday(t *testing.T) {
	friday := time.Date(2026, 8, 28, 15, 4, 0, 0, time.UTC)
	start, err := PeriodStart(PeriodWeek, friday)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)

	monday := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	start, err = PeriodStart(PeriodWeek, monday)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)

	sunday := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	start, err = PeriodStart(PeriodWeek, sunday)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), start)
}

func TestSummaryPrompt(t *testing.T) {
	note := "slept badly"
	prompt := SummaryPrompt("7d",
		[]MoodLine{
			{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Emoji: "😔", Note: &note},
			{Date: time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), Emoji: "😊"},
		},
		[]DiaryLine{{Title: "Rough day", Content: "Everything went sideways."}},
	)

	assert.Contains(t, prompt, "from the last 7d")
	assert.Contains(t, prompt, "2026-08-27: 😔 (slept badly)")
	assert.Contains(t, prompt, "2026-08-26: 😊 (no note)")
	assert.Contains(t, prompt, "Rough day: Everything went sideways....")
	assert.Contains(t, prompt, "SUMMARY:")
	assert.Contains(t, prompt, "RECOMMENDATIONS:")
}

func TestSummaryPromptEmptyData(t *testing.T) {
	prompt := SummaryPrompt("30d", nil, nil)
	assert.Contains(t, prompt, "No mood logs found")
	assert.Contains(t, prompt, "No diary entries found")
}

func TestSummaryPromptTruncatesExcerpts(t *testing.T) {
	long := strings.Repeat("а", 300) // multibyte, truncation must count runes
	prompt := SummaryPrompt("7d", nil, []DiaryLine{{Title: "Long", Content: long}})
	assert.Contains(t, prompt, "Long: "+strings.Repeat("а", 200)+"...")
	assert.NotContains(t, prompt, strings.Repeat("а", 201))
}

func TestSummaryPromptCapsEntries(t *testing.T) {
	entries := make([]DiaryLine, 12)
	for i := range entries {
		entries[i] = DiaryLine{Title: "Entry", Content: "text"}
	}
	prompt := SummaryPrompt("90d", nil, entries)
	assert.Equal(t, 10, strings.Count(prompt, "Entry: text..."))
}

func TestParseSummaryResponse(t *testing.T) {
	text := `SUMMARY: You had a steady week with mild dips midweek.
RECOMMENDATIONS:
1. Keep a consistent bedtime.
2. Take short walks after lunch.
3. Write down one win each evening.`

	result := ParseSummaryResponse(text)
	assert.False(t, result.Fallback)
	assert.Equal(t, "You had a steady week with mild dips midweek.", result.Summary)
	assert.Equal(t, []string{
		"Keep a consistent bedtime.",
		"Take short walks after lunch.",
		"Write down one win each evening.",
	}, result.Recommendations)
}

func TestParseSummaryResponseCapsAtThree(t *testing.T) {
	text := `SUMMARY: Busy stretch.
RECOMMENDATIONS:
1. One.
2. Two.
3. Three.
4. Four.`

	result := ParseSummaryResponse(text)
	assert.Len(t, result.Recommendations, 3)
	assert.Equal(t, "Three.", result.Recommendations[2])
}

func TestParseSummaryResponseFallbacks(t *testing.T) {
	result := ParseSummaryResponse("the model rambled with no structure")
	assert.True(t, result.Fallback)
	assert.Equal(t, FallbackSummary, result.Summary)
	assert.Equal(t, FallbackSummaryRecommendations, result.Recommendations)
}

func TestParseSummaryResponseMissingRecommendations(t *testing.T) {
	result := ParseSummaryResponse("SUMMARY: A fine week overall.")
	assert.False(t, result.Fallback)
	assert.Equal(t, "A fine week overall.", result.Summary)
	assert.Equal(t, FallbackSummaryRecommendations, result.Recommendations)
}

func TestParseRecommendations(t *testing.T) {
	recs, fallback := ParseRecommendations(`["Sleep more.", "Walk daily."]`)
	assert.False(t, fallback)
	assert.Equal(t, []string{"Sleep more.", "Walk daily."}, recs)
}

func TestParseRecommendationsCodeFence(t *testing.T) {
	recs, fallback := ParseRecommendations("```json\n[\"Stretch each morning.\"]\n```")
	assert.False(t, fallback)
	assert.Equal(t, []string{"Stretch each morning."}, recs)
}

func TestParseRecommendationsFallback(t *testing.T) {
	recs, fallback := ParseRecommendations("I suggest you sleep more.")
	assert.True(t, fallback)
	assert.Equal(t, FallbackRecommendations, recs)

	recs, fallback = ParseRecommendations("[]")
	assert.True(t, fallback)
	assert.Equal(t, FallbackRecommendations, recs)
}
