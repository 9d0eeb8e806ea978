package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/config"
)

func entryOn(date time.Time, completed bool) entries.Entry {
	return entries.Entry{
		UserID:    "42",
		HabitName: "Exercise",
		Completed: completed,
		Date:      date,
	}
}

func day(offset int) time.Time {
	return time.Now().AddDate(0, 0, offset)
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name     string
		entries  []entries.Entry
		expected float64
	}{
		{
			name:     "Empty window is 0.0, not an error",
			entries:  nil,
			expected: 0.0,
		},
		{
			name: "Two of three completed",
			entries: []entries.Entry{
				entryOn(day(-2), true),
				entryOn(day(-1), false),
				entryOn(day(0), true),
			},
			expected: 2.0 / 3.0,
		},
		{
			name: "All completed",
			entries: []entries.Entry{
				entryOn(day(-1), true),
				entryOn(day(0), true),
			},
			expected: 1.0,
		},
		{
			name: "None completed",
			entries: []entries.Entry{
				entryOn(day(0), false),
			},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := completionRate(tt.entries)
			assert.InDelta(t, tt.expected, rate, 0.001)
			assert.GreaterOrEqual(t, rate, 0.0)
			assert.LessOrEqual(t, rate, 1.0)
		})
	}
}

func TestCurrentStreak(t *testing.T) {
	tests := []struct {
		name     string
		entries  []entries.Entry
		expected int
	}{
		{
			name:     "No entries",
			entries:  nil,
			expected: 0,
		},
		{
			name: "Three consecutive completed days",
			entries: []entries.Entry{
				entryOn(day(-2), true),
				entryOn(day(-1), true),
				entryOn(day(0), true),
			},
			expected: 3,
		},
		{
			name: "Failed entry yesterday cuts the run to today",
			entries: []entries.Entry{
				entryOn(day(-2), true),
				entryOn(day(-1), false),
				entryOn(day(0), true),
			},
			expected: 1,
		},
		{
			name: "Gap day terminates like a failed day",
			entries: []entries.Entry{
				entryOn(day(-3), true),
				entryOn(day(-1), true),
				entryOn(day(0), true),
			},
			expected: 2,
		},
		{
			name: "Most recent day without success resets to zero",
			entries: []entries.Entry{
				entryOn(day(-1), true),
				entryOn(day(0), false),
			},
			expected: 0,
		},
		{
			name: "One completed entry rescues a day with failures",
			entries: []entries.Entry{
				entryOn(day(-1), true),
				entryOn(day(0), false),
				entryOn(day(0), true),
			},
			expected: 2,
		},
		{
			name: "Streak anchored to most recent entry date, not today",
			entries: []entries.Entry{
				entryOn(day(-6), true),
				entryOn(day(-5), true),
			},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, currentStreak(tt.entries))
		})
	}
}

// Removing the most recent successful day never increases the streak.
func TestCurrentStreakMonotone(t *testing.T) {
	run := []entries.Entry{
		entryOn(day(-4), true),
		entryOn(day(-3), true),
		entryOn(day(-2), true),
		entryOn(day(-1), true),
		entryOn(day(0), true),
	}

	previous := currentStreak(run)
	for len(run) > 0 {
		run = run[:len(run)-1]
		current := currentStreak(run)
		assert.LessOrEqual(t, current, previous)
		previous = current
	}
	assert.Equal(t, 0, previous)
}

func TestLastActivity(t *testing.T) {
	fallback := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Falls back to now with no entries", func(t *testing.T) {
		assert.Equal(t, fallback, lastActivity(nil, fallback))
	})

	t.Run("Picks the maximum timestamp", func(t *testing.T) {
		newest := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
		list := []entries.Entry{
			entryOn(time.Date(2024, 5, 18, 8, 0, 0, 0, time.UTC), true),
			entryOn(newest, false),
			entryOn(time.Date(2024, 5, 19, 8, 0, 0, 0, time.UTC), true),
		}
		assert.Equal(t, newest, lastActivity(list, fallback))
	})
}

type fakeHabitsRepo struct {
	habits []habits.Habit
	err    error
}

func (f *fakeHabitsRepo) Create(ctx context.Context, h *habits.Habit) error {
	return f.err
}

func (f *fakeHabitsRepo) ListByUser(ctx context.Context, userID string) ([]habits.Habit, error) {
	return f.habits, f.err
}

type fakeEntriesRepo struct {
	entries []entries.Entry
	err     error
}

func (f *fakeEntriesRepo) Append(ctx context.Context, e *entries.Entry) error {
	return f.err
}

func (f *fakeEntriesRepo) ListByUser(ctx context.Context, userID string, days int) ([]entries.Entry, error) {
	return f.entries, f.err
}

func newTestService(habitsRepo habits.Repository, entriesRepo entries.Repository) Service {
	return NewService(habitsRepo, entriesRepo, config.StatsConfig{
		WindowDays:         30,
		StreakLookbackDays: 365,
	}, zap.NewNop())
}

func TestGetUserStats(t *testing.T) {
	habitList := []habits.Habit{
		{UserID: "42", Name: "Exercise"},
		{UserID: "42", Name: "Reading"},
	}
	entryList := []entries.Entry{
		entryOn(day(-1), true),
		entryOn(day(0), true),
		entryOn(day(0), false),
	}

	svc := newTestService(
		&fakeHabitsRepo{habits: habitList},
		&fakeEntriesRepo{entries: entryList},
	)

	got := svc.GetUserStats(context.Background(), "42")

	assert.Equal(t, "42", got.UserID)
	assert.Equal(t, 2, got.TotalHabits)
	// active_habits intentionally mirrors total_habits; see service.go.
	assert.Equal(t, got.TotalHabits, got.ActiveHabits)
	assert.InDelta(t, 2.0/3.0, got.CompletionRate, 0.001)
	assert.Equal(t, 2, got.StreakDays)
	require.False(t, got.LastActivity.IsZero())
}

func TestGetUserStatsDegradesToZeroOnStoreFailure(t *testing.T) {
	storeErr := errors.New("spreadsheet unreachable")

	tests := []struct {
		name        string
		habitsRepo  habits.Repository
		entriesRepo entries.Repository
	}{
		{
			name:        "Habits read fails",
			habitsRepo:  &fakeHabitsRepo{err: storeErr},
			entriesRepo: &fakeEntriesRepo{},
		},
		{
			name:        "Entries read fails",
			habitsRepo:  &fakeHabitsRepo{},
			entriesRepo: &fakeEntriesRepo{err: storeErr},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.habitsRepo, tt.entriesRepo)
			got := svc.GetUserStats(context.Background(), "42")

			assert.Equal(t, "42", got.UserID)
			assert.Zero(t, got.TotalHabits)
			assert.Zero(t, got.ActiveHabits)
			assert.Zero(t, got.CompletionRate)
			assert.Zero(t, got.StreakDays)
			// Even the degraded snapshot reports a last-activity instant.
			assert.WithinDuration(t, time.Now(), got.LastActivity, time.Minute)
		})
	}
}
