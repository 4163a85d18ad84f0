package insight

import (
	"encoding/json"
	"regexp"
	"strings"
)

// FallbackSummary replaces the narrative when the model response
// carries no SUMMARY section.
const FallbackSummary = "Unable to generate summary at this time."

// FallbackSummaryRecommendations replaces the summary's advice list
// when no numbered items could be parsed.
var FallbackSummaryRecommendations = []string{
	"Practice 10 minutes of daily meditation or deep breathing exercises",
	"Maintain a regular sleep schedule of 7-8 hours per night",
	"Engage in physical activity for at least 30 minutes, 3 times per week",
}

// FallbackRecommendations is the standalone recommendation list used
// when the model returns something other than a JSON string array.
var FallbackRecommendations = []string{
	"Take 5 minutes for deep breathing exercises to reduce stress and anxiety.",
	"Write in a journal for 10 minutes to process your thoughts and emotions.",
	"Go for a 15-minute walk outside to boost mood and get fresh air.",
	"Practice gratitude by listing 3 things you're thankful for today.",
}

var (
	summaryPattern         = regexp.MustCompile(`(?s)SUMMARY:\s*(.*?)(?:RECOMMENDATIONS:|$)`)
	recommendationsPattern = regexp.MustCompile(`(?s)RECOMMENDATIONS:\s*(.*)`)
	numberedItemPattern    = regexp.MustCompile(`\d+\.\s+`)
	codeFencePattern       = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
)

// SummaryResult is the parsed form of a summary model response.
type SummaryResult struct {
	Summary         string
	Recommendations []string
	// Fallback marks a summary that had to be substituted because the
	// response carried no SUMMARY section.
	Fallback bool
}

// ParseSummaryResponse extracts the SUMMARY narrative and the numbered
// RECOMMENDATIONS list from a model response, substituting fallback
// content for whichever part is missing. The list is capped at three
// items.
func ParseSummaryResponse(text string) SummaryResult {
	result := SummaryResult{}

	if m := summaryPattern.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		result.Summary = strings.TrimSpace(m[1])
	} else {
		result.Summary = FallbackSummary
		result.Fallback = true
	}

	if m := recommendationsPattern.FindStringSubmatch(text); m != nil {
		for _, part := range numberedItemPattern.Split(m[1], -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			result.Recommendations = append(result.Recommendations, part)
			if len(result.Recommendations) == 3 {
				break
			}
		}
	}
	if len(result.Recommendations) == 0 {
		result.Recommendations = append([]string(nil), FallbackSummaryRecommendations...)
	}

	return result
}

// ParseRecommendations decodes a model response expected to be a JSON
// array of strings, tolerating a surrounding markdown code fence. The
// second return value reports whether the fixed fallback list had to be
// substituted.
func ParseRecommendations(text string) ([]string, bool) {
	candidate := strings.TrimSpace(text)
	if m := codeFencePattern.FindStringSubmatch(candidate); m != nil {
		candidate = m[1]
	}

	var recommendations []string
	if err := json.Unmarshal([]byte(candidate), &recommendations); err != nil || len(recommendations) == 0 {
		return append([]string(nil), FallbackRecommendations...), true
	}
	return recommendations, false
}
