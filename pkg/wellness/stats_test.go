package wellness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return d
}

func TestStreak(t *testing.T) {
	today := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dates    []string
		expected int
	}{
		{"no logs", nil, 0},
		{"logged today only", []string{"2026-08-28"}, 1},
		{"three consecutive days", []string{"2026-08-28", "2026-08-27", "2026-08-26"}, 3},
		{"yesterday only breaks streak", []string{"2026-08-27"}, 0},
		{"gap stops counting", []string{"2026-08-28", "2026-08-27", "2026-08-25"}, 2},
		{"older history ignored after gap", []string{"2026-08-28", "2026-08-26", "2026-08-25", "2026-08-24"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := make([]time.Time, 0, len(tt.dates))
			for _, d := range tt.dates {
				dates = append(dates, day(t, d))
			}
			assert.Equal(t, tt.expected, Streak(dates, today))
		})
	}
}

func TestScore(t *testing.T) {
	assert.Equal(t, float64(10), Score("🥰"))
	assert.Equal(t, float64(1), Score("😭"))
	assert.Equal(t, float64(5), Score("🚀"), "unknown emoji falls back to neutral")
}

func TestAverageScore(t *testing.T) {
	assert.Equal(t, float64(0), AverageScore(nil))
	assert.Equal(t, float64(8), AverageScore([]string{"😊"}))
	// (8 + 9 + 1) / 3
	assert.InDelta(t, 6.0, AverageScore([]string{"😊", "😄", "😭"}), 0.0001)
}

func TestImprovementPercent(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		expected int
	}{
		{"empty", nil, 0},
		{"single score", []float64{7}, 0},
		{"back half doubles front half", []float64{4, 4, 8, 8}, 100},
		{"odd length splits floor front", []float64{4, 8, 8}, 100},
		{"flat history", []float64{5, 5, 5, 5}, 0},
		{"decline", []float64{8, 8, 4, 4}, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ImprovementPercent(tt.scores))
		})
	}
}

func TestDistribution(t *testing.T) {
	assert.Nil(t, Distribution(nil))

	dist := Distribution([]string{"😊", "😔", "😊", "😊", "😔", "🙂"})
	assert.Equal(t, []EmojiCount{
		{Emoji: "😊", Count: 3, Percentage: 50},
		{Emoji: "😔", Count: 2, Percentage: 33},
		{Emoji: "🙂", Count: 1, Percentage: 17},
	}, dist)
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \n\t ", 0},
		{"single word", "hello", 1},
		{"mixed whitespace", "today was\n a good   day", 5},
		{"leading and trailing spaces", "  rough morning  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WordCount(tt.content))
		})
	}
}
