package habits

import (
	"time"
)

// Frequency is the target cadence of a habit.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Habit represents one habit a user is tracking. Habits are identified
// by (user_id, name) with name compared case-insensitively; there is no
// separate habit ID because entries reference habits by name.
type Habit struct {
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	TargetFrequency Frequency `json:"target_frequency"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateHabitInput represents the input for creating a new habit
type CreateHabitInput struct {
	UserID          string
	Name            string
	Description     string
	TargetFrequency Frequency
}
