package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/insights"
)

func TestPositiveStatuses(t *testing.T) {
	assert.True(t, positiveStatuses["completed"])
	assert.True(t, positiveStatuses["done"])
	assert.True(t, positiveStatuses["yes"])
	assert.False(t, positiveStatuses["no"])
	assert.False(t, positiveStatuses["partial"])
	assert.False(t, positiveStatuses[""])
}

func TestCategoryEmoji(t *testing.T) {
	assert.Equal(t, "💪", categoryEmoji(insights.CategoryMotivation))
	assert.Equal(t, "📈", categoryEmoji(insights.CategoryImprovement))
	assert.Equal(t, "🔍", categoryEmoji(insights.CategoryPattern))
	assert.Equal(t, "🏆", categoryEmoji(insights.CategoryAchievement))
	assert.Equal(t, "💡", categoryEmoji(insights.Category("unknown")))
}

func TestReminderTextVariesByHour(t *testing.T) {
	morning := ReminderText(8)
	midday := ReminderText(12)
	evening := ReminderText(18)
	night := ReminderText(21)

	texts := map[string]bool{morning: true, midday: true, evening: true, night: true}
	assert.Len(t, texts, 4, "each reminder slot should read differently")
	for text := range texts {
		assert.Contains(t, text, "/quick_track")
	}
}
