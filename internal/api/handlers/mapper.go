package handlers

import (
	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/dto"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/insights"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/stats"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/user"
)

// Users
func UserToResponse(u *user.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		JoinedAt:  u.JoinedAt,
		IsActive:  u.IsActive,
	}
}

// Habits
func HabitToResponse(h *habits.Habit) *dto.HabitResponse {
	if h == nil {
		return nil
	}
	return &dto.HabitResponse{
		UserID:          h.UserID,
		Name:            h.Name,
		Description:     h.Description,
		TargetFrequency: string(h.TargetFrequency),
		CreatedAt:       h.CreatedAt,
	}
}

func HabitsToResponse(list []habits.Habit) []dto.HabitResponse {
	result := make([]dto.HabitResponse, 0, len(list))
	for i := range list {
		result = append(result, *HabitToResponse(&list[i]))
	}
	return result
}

// Entries
func EntryToResponse(e *entries.Entry) *dto.EntryResponse {
	if e == nil {
		return nil
	}
	return &dto.EntryResponse{
		UserID:    e.UserID,
		HabitName: e.HabitName,
		Completed: e.Completed,
		Date:      e.Date,
		Notes:     e.Notes,
		Rating:    e.Rating,
	}
}

func EntriesToResponse(list []entries.Entry) []dto.EntryResponse {
	result := make([]dto.EntryResponse, 0, len(list))
	for i := range list {
		result = append(result, *EntryToResponse(&list[i]))
	}
	return result
}

// Stats
func StatsToResponse(s stats.UserStats) dto.StatsResponse {
	return dto.StatsResponse{
		UserID:         s.UserID,
		TotalHabits:    s.TotalHabits,
		ActiveHabits:   s.ActiveHabits,
		CompletionRate: s.CompletionRate,
		StreakDays:     s.StreakDays,
		LastActivity:   s.LastActivity,
	}
}

// Insights
func InsightToResponse(i insights.AIInsight) dto.InsightResponse {
	return dto.InsightResponse{
		ID:          i.ID.String(),
		UserID:      i.UserID,
		Insight:     i.Insight,
		Category:    string(i.Category),
		Confidence:  i.Confidence,
		GeneratedAt: i.GeneratedAt,
	}
}

func InsightsToResponse(list []insights.AIInsight) []dto.InsightResponse {
	result := make([]dto.InsightResponse, 0, len(list))
	for _, i := range list {
		result = append(result, InsightToResponse(i))
	}
	return result
}
