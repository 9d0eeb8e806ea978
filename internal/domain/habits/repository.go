package habits

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/infrastructure/persistence/sheets"
)

var (
	ErrHabitExists  = errors.New("habit already exists for this user")
	ErrInvalidInput = errors.New("invalid habit input")
)

// Repository provides access to the habits collection.
type Repository interface {
	Create(ctx context.Context, h *Habit) error
	ListByUser(ctx context.Context, userID string) ([]Habit, error)
}

type repository struct {
	store sheets.Store
}

func NewRepository(store sheets.Store) Repository {
	return &repository{store: store}
}

// Create appends the habit after checking (user_id, lowercased name)
// uniqueness. As with users, the read-then-append check can race; the
// store offers no way to enforce the constraint atomically.
func (r *repository) Create(ctx context.Context, h *Habit) error {
	records, err := r.store.ReadAll(ctx, sheets.SheetHabits)
	if err != nil {
		return err
	}

	for _, record := range records {
		if record.Get("user_id") == h.UserID &&
			strings.EqualFold(record.Get("name"), h.Name) {
			return ErrHabitExists
		}
	}

	row := []string{
		h.UserID,
		h.Name,
		h.Description,
		string(h.TargetFrequency),
		h.CreatedAt.Format(time.RFC3339),
	}
	return r.store.AppendRow(ctx, sheets.SheetHabits, row)
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Habit, error) {
	records, err := r.store.ReadAll(ctx, sheets.SheetHabits)
	if err != nil {
		return nil, err
	}

	habits := make([]Habit, 0)
	for _, record := range records {
		if record.Get("user_id") != userID {
			continue
		}
		createdAt, _ := time.Parse(time.RFC3339, record.Get("created_at"))
		habits = append(habits, Habit{
			UserID:          record.Get("user_id"),
			Name:            record.Get("name"),
			Description:     record.Get("description"),
			TargetFrequency: Frequency(record.Get("target_frequency")),
			CreatedAt:       createdAt,
		})
	}
	return habits, nil
}
