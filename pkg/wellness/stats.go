package wellness

import (
	"math"
	"time"
)

// moodScores maps every emoji in the picker palette to a 1-10 wellbeing
// score. Emojis outside the palette score defaultScore.
var moodScores = map[string]float64{
	"😊": 8,  // Happy
	"😄": 9,  // Excited
	"🥰": 10, // Loved
	"🤗": 9,  // Grateful
	"😌": 8,  // Peaceful
	"🙂": 7,  // Content
	"😐": 5,  // Neutral
	"🤔": 5,  // Thoughtful
	"😴": 4,  // Tired
	"😔": 3,  // Sad
	"😟": 3,  // Worried
	"😤": 3,  // Frustrated
	"😰": 2,  // Anxious
	"😢": 2,  // Upset
	"😭": 1,  // Distressed
}

const defaultScore = 5

// Score returns the wellbeing score for a single emoji.
func Score(emoji string) float64 {
	if s, ok := moodScores[emoji]; ok {
		return s
	}
	return defaultScore
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(later, earlier time.Time) int {
	return int(truncateToDay(later).Sub(truncateToDay(earlier)).Hours() / 24)
}

// Streak counts consecutive logged calendar days ending today, given
// log dates sorted newest first. A most recent entry older than today
// breaks the streak immediately, so "logged yesterday but not today"
// yields 0.
func Streak(dates []time.Time, today time.Time) int {
	streak := 0
	for _, d := range dates {
		if daysBetween(today, d) != streak {
			break
		}
		streak++
	}
	return streak
}

// AverageScore maps each emoji through the score table and returns the
// arithmetic mean, or 0 for an empty set.
func AverageScore(emojis []string) float64 {
	if len(emojis) == 0 {
		return 0
	}
	sum := 0.0
	for _, e := range emojis {
		sum += Score(e)
	}
	return sum / float64(len(emojis))
}

// ImprovementPercent splits a newest-first score sequence into its
// front floor(n/2) elements and back ceil(n/2) elements and returns the
// rounded percent change from the front half's mean to the back half's
// mean. Fewer than two scores yield 0.
func ImprovementPercent(scores []float64) int {
	if len(scores) < 2 {
		return 0
	}
	mid := len(scores) / 2
	frontMean := mean(scores[:mid])
	backMean := mean(scores[mid:])
	if frontMean == 0 {
		return 0
	}
	return int(math.Round(100 * (backMean - frontMean) / frontMean))
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// EmojiCount is one bucket of the mood distribution.
type EmojiCount struct {
	Emoji      string
	Count      int
	Percentage int
}

// Distribution buckets emojis by glyph, ordered by descending count.
// Percentages are rounded and computed against the total entry count.
func Distribution(emojis []string) []EmojiCount {
	if len(emojis) == 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, e := range emojis {
		if _, seen := counts[e]; !seen {
			order = append(order, e)
		}
		counts[e]++
	}

	out := make([]EmojiCount, 0, len(counts))
	total := float64(len(emojis))
	for _, e := range order {
		out = append(out, EmojiCount{
			Emoji:      e,
			Count:      counts[e],
			Percentage: int(math.Round(100 * float64(counts[e]) / total)),
		})
	}

	// Stable selection sort by count keeps first-seen order for ties.
	for i := 0; i < len(out); i++ {
		best := i
		for j := i + 1; j < len(out); j++ {
			if out[j].Count > out[best].Count {
				best = j
			}
		}
		if best != i {
			picked := out[best]
			copy(out[i+1:best+1], out[i:best])
			out[i] = picked
		}
	}

	return out
}

// WordCount returns the number of whitespace-delimited non-empty tokens
// in a diary entry's content. Computed once at creation time.
func WordCount(content string) int {
	count := 0
	inToken := false
	for _, r := range content {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			inToken = false
		default:
			if !inToken {
				count++
			}
			inToken = true
		}
	}
	return count
}
