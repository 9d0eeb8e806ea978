package stats

import (
	"time"
)

// UserStats is a derived snapshot; it is recomputed from the raw entry
// records on every request and never persisted.
type UserStats struct {
	UserID         string    `json:"user_id"`
	TotalHabits    int       `json:"total_habits"`
	ActiveHabits   int       `json:"active_habits"`
	CompletionRate float64   `json:"completion_rate"`
	StreakDays     int       `json:"streak_days"`
	LastActivity   time.Time `json:"last_activity"`
}
