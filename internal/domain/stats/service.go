package stats

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/config"
)

// Service computes UserStats snapshots. GetUserStats is total: when the
// store is unreachable it degrades to a zero-valued snapshot instead of
// surfacing the error.
type Service interface {
	GetUserStats(ctx context.Context, userID string) UserStats
}

type service struct {
	habits        habits.Repository
	entries       entries.Repository
	windowDays    int
	lookbackDays  int
	logger        *zap.Logger
}

func NewService(habitsRepo habits.Repository, entriesRepo entries.Repository, cfg config.StatsConfig, logger *zap.Logger) Service {
	windowDays := cfg.WindowDays
	if windowDays <= 0 {
		windowDays = 30
	}
	lookbackDays := cfg.StreakLookbackDays
	if lookbackDays <= 0 {
		lookbackDays = 365
	}

	return &service{
		habits:       habitsRepo,
		entries:      entriesRepo,
		windowDays:   windowDays,
		lookbackDays: lookbackDays,
		logger:       logger,
	}
}

func (s *service) GetUserStats(ctx context.Context, userID string) UserStats {
	userHabits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("Stats degraded to zero: habits unavailable",
			zap.String("user_id", userID),
			zap.Error(err))
		return zeroStats(userID)
	}

	windowEntries, err := s.entries.ListByUser(ctx, userID, s.windowDays)
	if err != nil {
		s.logger.Warn("Stats degraded to zero: entries unavailable",
			zap.String("user_id", userID),
			zap.Error(err))
		return zeroStats(userID)
	}

	// The streak looks further back than the rate window.
	lookbackEntries, err := s.entries.ListByUser(ctx, userID, s.lookbackDays)
	if err != nil {
		s.logger.Warn("Streak lookback unavailable, using window entries",
			zap.String("user_id", userID),
			zap.Error(err))
		lookbackEntries = windowEntries
	}

	// active_habits is computed identically to total_habits. What
	// "active" should mean is an open product question; do not invent a
	// definition here.
	totalHabits := len(userHabits)

	return UserStats{
		UserID:         userID,
		TotalHabits:    totalHabits,
		ActiveHabits:   totalHabits,
		CompletionRate: completionRate(windowEntries),
		StreakDays:     currentStreak(lookbackEntries),
		LastActivity:   lastActivity(windowEntries, time.Now()),
	}
}

func zeroStats(userID string) UserStats {
	return UserStats{
		UserID:       userID,
		LastActivity: time.Now(),
	}
}

// completionRate is completed entries over total entries in the window,
// 0.0 for an empty window.
func completionRate(list []entries.Entry) float64 {
	if len(list) == 0 {
		return 0.0
	}

	completed := 0
	for _, e := range list {
		if e.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(list))
}

// currentStreak counts consecutive successful calendar days walking
// backward from the most recent date that has any entry. A day is
// successful when at least one of its entries is completed. A day absent
// from the data terminates the streak exactly like a day with only
// failed entries; "no attempt" and "failed attempt" are not
// distinguished.
func currentStreak(list []entries.Entry) int {
	dayCompleted := make(map[time.Time]bool)
	var latest time.Time
	for _, e := range list {
		day := calendarDay(e.Date)
		dayCompleted[day] = dayCompleted[day] || e.Completed
		if day.After(latest) {
			latest = day
		}
	}

	if len(dayCompleted) == 0 {
		return 0
	}

	streak := 0
	for day := latest; ; day = day.AddDate(0, 0, -1) {
		completed, present := dayCompleted[day]
		if !present || !completed {
			break
		}
		streak++
	}
	return streak
}

// lastActivity is the maximum entry timestamp in the window. With no
// entries it falls back to now, so an idle user still "looks active".
// See DESIGN.md before changing this.
func lastActivity(list []entries.Entry, fallback time.Time) time.Time {
	last := fallback
	found := false
	for _, e := range list {
		if !found || e.Date.After(last) {
			last = e.Date
			found = true
		}
	}
	return last
}

// calendarDay truncates a timestamp to its calendar date.
func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
