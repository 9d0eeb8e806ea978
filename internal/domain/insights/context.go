package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/stats"
)

// promptContext is the summarized view of a user's recent activity that
// gets serialized into the generation prompt.
type promptContext struct {
	HabitNames       []string
	TotalEntries     int
	CompletedEntries int
	CompletionRate   float64
	StreakDays       int
	WeeklyPattern    string
}

func buildPromptContext(habitNames []string, list []entries.Entry, userStats stats.UserStats) promptContext {
	completed := 0
	for _, e := range list {
		if e.Completed {
			completed++
		}
	}

	return promptContext{
		HabitNames:       habitNames,
		TotalEntries:     len(list),
		CompletedEntries: completed,
		CompletionRate:   userStats.CompletionRate,
		StreakDays:       userStats.StreakDays,
		WeeklyPattern:    weeklyPattern(list),
	}
}

// weeklyPattern reports the weekday with the most completions as the
// best day and the weekday with the fewest as the hardest. Only
// weekdays with at least one completion compete; ties resolve in
// Sunday-first weekday order so the summary is deterministic.
func weeklyPattern(list []entries.Entry) string {
	if len(list) == 0 {
		return "Not enough data yet"
	}

	completedPerDay := make(map[time.Weekday]int)
	for _, e := range list {
		if e.Completed {
			completedPerDay[e.Date.Weekday()]++
		}
	}

	if len(completedPerDay) == 0 {
		return "No completed entries yet"
	}

	var bestDay, hardestDay time.Weekday
	bestCount, hardestCount := -1, -1
	for d := time.Sunday; d <= time.Saturday; d++ {
		count, ok := completedPerDay[d]
		if !ok {
			continue
		}
		if count > bestCount {
			bestDay, bestCount = d, count
		}
		if hardestCount == -1 || count < hardestCount {
			hardestDay, hardestCount = d, count
		}
	}

	return fmt.Sprintf("Best day: %s, hardest day: %s", bestDay, hardestDay)
}

// prompt serializes the context into the instruction block sent to the
// generation backend. The backend is asked for a bare JSON array; the
// parser still treats the reply as untrusted free text.
func (c promptContext) prompt() string {
	var b strings.Builder

	b.WriteString("You are an expert habit coach who helps people improve their routines.\n")
	b.WriteString("Analyze the habit data below and provide valuable, motivating, actionable insights.\n")
	b.WriteString("Keep a positive, constructive tone. Use fitting emojis.\n\n")

	b.WriteString("User data (last 30 days):\n")
	fmt.Fprintf(&b, "- Active habits: %s\n", strings.Join(c.HabitNames, ", "))
	fmt.Fprintf(&b, "- Total entries: %d\n", c.TotalEntries)
	fmt.Fprintf(&b, "- Completed entries: %d\n", c.CompletedEntries)
	fmt.Fprintf(&b, "- Completion rate: %.1f%%\n", c.CompletionRate*100)
	fmt.Fprintf(&b, "- Current streak: %d days\n", c.StreakDays)
	fmt.Fprintf(&b, "- Weekly pattern: %s\n\n", c.WeeklyPattern)

	b.WriteString("Provide 3-4 insights. Each insight must be specific, personal,\n")
	b.WriteString("actionable, and grounded in the observed patterns.\n\n")

	b.WriteString("Respond ONLY with a valid JSON array in this format:\n")
	b.WriteString(`[` + "\n")
	b.WriteString(`    {"insight": "specific and motivating message", "category": "motivation", "confidence": 0.8},` + "\n")
	b.WriteString(`    {"insight": "another actionable insight", "category": "improvement", "confidence": 0.9}` + "\n")
	b.WriteString(`]` + "\n\n")
	b.WriteString("Valid categories: motivation, improvement, pattern, achievement\n")

	return b.String()
}
