package entries

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/infrastructure/persistence/sheets"
)

type fakeStore struct {
	records  []sheets.Record
	appended [][]string
}

func (f *fakeStore) AppendRow(ctx context.Context, sheet string, row []string) error {
	f.appended = append(f.appended, row)
	return nil
}

func (f *fakeStore) ReadAll(ctx context.Context, sheet string) ([]sheets.Record, error) {
	return f.records, nil
}

func entryRecord(userID string, date string, completed bool) sheets.Record {
	return sheets.Record{
		"user_id":    userID,
		"habit_name": "Exercise",
		"completed":  strconv.FormatBool(completed),
		"date":       date,
		"notes":      "",
		"rating":     "",
	}
}

func TestRepositoryAppend(t *testing.T) {
	t.Run("Serializes all fields", func(t *testing.T) {
		store := &fakeStore{}
		repo := NewRepository(store)
		rating := 4

		err := repo.Append(context.Background(), &Entry{
			UserID:    "42",
			HabitName: "Exercise",
			Completed: true,
			Date:      time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC),
			Notes:     "morning session",
			Rating:    &rating,
		})

		require.NoError(t, err)
		require.Len(t, store.appended, 1)
		row := store.appended[0]
		assert.Equal(t, "42", row[0])
		assert.Equal(t, "Exercise", row[1])
		assert.Equal(t, "true", row[2])
		assert.Equal(t, "2026-08-28T09:30:00Z", row[3])
		assert.Equal(t, "morning session", row[4])
		assert.Equal(t, "4", row[5])
	})

	t.Run("Absent rating serializes empty", func(t *testing.T) {
		store := &fakeStore{}
		repo := NewRepository(store)

		err := repo.Append(context.Background(), &Entry{UserID: "42", HabitName: "Exercise", Date: time.Now()})

		require.NoError(t, err)
		assert.Equal(t, "", store.appended[0][5])
	})
}

func TestRepositoryListByUser(t *testing.T) {
	now := time.Now()

	t.Run("Filters by user and window", func(t *testing.T) {
		store := &fakeStore{records: []sheets.Record{
			entryRecord("42", now.Format(time.RFC3339), true),
			entryRecord("42", now.AddDate(0, 0, -40).Format(time.RFC3339), true),
			entryRecord("7", now.Format(time.RFC3339), true),
		}}
		repo := NewRepository(store)

		list, err := repo.ListByUser(context.Background(), "42", 30)

		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, list[0].Completed)
	})

	t.Run("Skips malformed dates", func(t *testing.T) {
		store := &fakeStore{records: []sheets.Record{
			entryRecord("42", "not-a-date", true),
			entryRecord("42", now.Format(time.RFC3339), false),
		}}
		repo := NewRepository(store)

		list, err := repo.ListByUser(context.Background(), "42", 30)

		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Accepts zone-less and date-only forms", func(t *testing.T) {
		store := &fakeStore{records: []sheets.Record{
			entryRecord("42", now.Format("2006-01-02T15:04:05"), true),
			entryRecord("42", now.Format("2006-01-02"), true),
		}}
		repo := NewRepository(store)

		list, err := repo.ListByUser(context.Background(), "42", 30)

		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("Parses numeric rating", func(t *testing.T) {
		record := entryRecord("42", now.Format(time.RFC3339), true)
		record["rating"] = "5"
		store := &fakeStore{records: []sheets.Record{record}}
		repo := NewRepository(store)

		list, err := repo.ListByUser(context.Background(), "42", 30)

		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].Rating)
		assert.Equal(t, 5, *list[0].Rating)
	})
}
