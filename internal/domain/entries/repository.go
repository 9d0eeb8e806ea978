package entries

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/infrastructure/persistence/sheets"
)

var ErrInvalidInput = errors.New("invalid entry input")

// Repository provides access to the entries collection. Entries are
// append-only and immutable once written.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	ListByUser(ctx context.Context, userID string, days int) ([]Entry, error)
}

type repository struct {
	store sheets.Store
}

func NewRepository(store sheets.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Append(ctx context.Context, e *Entry) error {
	rating := ""
	if e.Rating != nil {
		rating = strconv.Itoa(*e.Rating)
	}

	row := []string{
		e.UserID,
		e.HabitName,
		strconv.FormatBool(e.Completed),
		e.Date.Format(time.RFC3339),
		e.Notes,
		rating,
	}
	return r.store.AppendRow(ctx, sheets.SheetEntries, row)
}

// ListByUser returns the user's entries from the trailing `days` window.
// Rows whose date fails to parse are skipped silently; one malformed row
// must not abort the whole read.
func (r *repository) ListByUser(ctx context.Context, userID string, days int) ([]Entry, error) {
	records, err := r.store.ReadAll(ctx, sheets.SheetEntries)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	result := make([]Entry, 0)
	for _, record := range records {
		if record.Get("user_id") != userID {
			continue
		}

		date, ok := parseDate(record.Get("date"))
		if !ok || date.Before(cutoff) {
			continue
		}

		var rating *int
		if raw := record.Get("rating"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil {
				rating = &v
			}
		}

		result = append(result, Entry{
			UserID:    record.Get("user_id"),
			HabitName: record.Get("habit_name"),
			Completed: strings.EqualFold(record.Get("completed"), "true"),
			Date:      date,
			Notes:     record.Get("notes"),
			Rating:    rating,
		})
	}
	return result, nil
}

// parseDate accepts RFC 3339 and the zone-less ISO form older rows carry.
func parseDate(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
