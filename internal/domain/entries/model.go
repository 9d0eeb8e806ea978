package entries

import (
	"time"
)

// Entry is one completion record for a habit on a given date. HabitName
// is a free-text reference; it is deliberately not validated against the
// habits collection, matching the store's append-only contract.
type Entry struct {
	UserID    string    `json:"user_id"`
	HabitName string    `json:"habit_name"`
	Completed bool      `json:"completed"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
	Rating    *int      `json:"rating,omitempty"` // 1-5, absent when not given
}

// TrackHabitInput represents the input for recording habit progress
type TrackHabitInput struct {
	UserID    string
	HabitName string
	Completed bool
	Notes     string
	Rating    *int
}
