package insights

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies an insight.
type Category string

const (
	CategoryMotivation  Category = "motivation"
	CategoryImprovement Category = "improvement"
	CategoryPattern     Category = "pattern"
	CategoryAchievement Category = "achievement"
)

// ParseCategory maps free text from the model onto a known category.
// Anything unknown (including empty) becomes motivation.
func ParseCategory(raw string) Category {
	switch Category(raw) {
	case CategoryImprovement, CategoryPattern, CategoryAchievement:
		return Category(raw)
	}
	return CategoryMotivation
}

// AIInsight is an ephemeral, AI-generated observation about a user's
// habits. Insights are returned directly to the caller and never stored.
type AIInsight struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	Insight     string    `json:"insight"`
	Category    Category  `json:"category"`
	Confidence  float64   `json:"confidence"`
	GeneratedAt time.Time `json:"generated_at"`
}

func newInsight(userID, text string, category Category, confidence float64) AIInsight {
	return AIInsight{
		ID:          uuid.New(),
		UserID:      userID,
		Insight:     text,
		Category:    category,
		Confidence:  clampConfidence(confidence),
		GeneratedAt: time.Now(),
	}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
