package dto

import "time"

// UserResponse represents a user in API responses.
type UserResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	JoinedAt  time.Time `json:"joined_at"`
	IsActive  bool      `json:"is_active"`
}

// HabitResponse represents a habit in API responses.
type HabitResponse struct {
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	TargetFrequency string    `json:"target_frequency"`
	CreatedAt       time.Time `json:"created_at"`
}

// EntryResponse represents one tracked entry in API responses.
type EntryResponse struct {
	UserID    string    `json:"user_id"`
	HabitName string    `json:"habit_name"`
	Completed bool      `json:"completed"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
	Rating    *int      `json:"rating,omitempty"`
}

// StatsResponse represents a user's aggregate statistics.
type StatsResponse struct {
	UserID         string    `json:"user_id"`
	TotalHabits    int       `json:"total_habits"`
	ActiveHabits   int       `json:"active_habits"`
	CompletionRate float64   `json:"completion_rate"`
	StreakDays     int       `json:"streak_days"`
	LastActivity   time.Time `json:"last_activity"`
}

// InsightResponse represents one generated insight.
type InsightResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Insight     string    `json:"insight"`
	Category    string    `json:"category"`
	Confidence  float64   `json:"confidence"`
	GeneratedAt time.Time `json:"generated_at"`
}

// RecommendationResponse wraps a habit recommendation.
type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

// DashboardResponse aggregates everything a dashboard view needs in a
// single round trip.
type DashboardResponse struct {
	User     *UserResponse     `json:"user,omitempty"`
	Habits   []HabitResponse   `json:"habits"`
	Entries  []EntryResponse   `json:"entries"`
	Stats    StatsResponse     `json:"stats"`
	Insights []InsightResponse `json:"insights"`
}
