package insights

import (
	"encoding/json"
	"strconv"
	"strings"
)

const defaultConfidence = 0.7

// rawInsight tolerates the loose shapes generation backends emit:
// category may be absent or unknown, confidence may be absent, a string,
// or a number.
type rawInsight struct {
	Insight    string      `json:"insight"`
	Category   string      `json:"category"`
	Confidence interface{} `json:"confidence"`
}

// stripCodeFences removes markdown fencing the backend may wrap around
// its JSON output.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseInsights parses the backend reply into insights. The second
// return value reports whether the reply was usable structured output;
// an empty array counts as unusable because the pipeline must never
// hand back an empty result.
func parseInsights(userID, reply string) ([]AIInsight, bool) {
	cleaned := stripCodeFences(reply)

	var items []rawInsight
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, false
	}
	if len(items) == 0 {
		return nil, false
	}

	result := make([]AIInsight, 0, len(items))
	for _, item := range items {
		result = append(result, newInsight(
			userID,
			item.Insight,
			ParseCategory(item.Category),
			toConfidence(item.Confidence),
		))
	}
	return result, true
}

// toConfidence coerces whatever the backend put in the confidence field
// to a float, defaulting when absent or unparseable.
func toConfidence(v interface{}) float64 {
	switch c := v.(type) {
	case float64:
		return c
	case string:
		if parsed, err := strconv.ParseFloat(c, 64); err == nil {
			return parsed
		}
	case json.Number:
		if parsed, err := c.Float64(); err == nil {
			return parsed
		}
	}
	return defaultConfidence
}
