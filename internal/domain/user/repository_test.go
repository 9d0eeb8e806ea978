package user

import (
	"context"
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

func userRecord(userID string) sheets.Record {
	return sheets.Record{
		"user_id":    userID,
		"username":   "jane",
		"first_name": "Jane",
		"last_name":  "Doe",
		"joined_at":  time.Now().Format(time.RFC3339),
		"is_active":  "True",
	}
}

func TestRepositoryCreate(t *testing.T) {
	t.Run("Appends new user", func(t *testing.T) {
		store := &fakeStore{}
		repo := NewRepository(store)

		err := repo.Create(context.Background(), &User{
			UserID:   "42",
			Username: "jane",
			JoinedAt: time.Now(),
			IsActive: true,
		})

		require.NoError(t, err)
		require.Len(t, store.appended, 1)
		assert.Equal(t, "42", store.appended[0][0])
		assert.Equal(t, "true", store.appended[0][5])
	})

	t.Run("Rejects duplicate user id", func(t *testing.T) {
		store := &fakeStore{records: []sheets.Record{userRecord("42")}}
		repo := NewRepository(store)

		err := repo.Create(context.Background(), &User{UserID: "42"})

		assert.ErrorIs(t, err, ErrUserExists)
		assert.Empty(t, store.appended)
	})
}

func TestRepositoryFindByID(t *testing.T) {
	store := &fakeStore{records: []sheets.Record{userRecord("42")}}
	repo := NewRepository(store)

	t.Run("Found", func(t *testing.T) {
		u, err := repo.FindByID(context.Background(), "42")

		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "Jane", u.FirstName)
		// Sheets stringifies booleans with a leading capital; the reader
		// accepts both spellings.
		assert.True(t, u.IsActive)
	})

	t.Run("Missing user yields nil without error", func(t *testing.T) {
		u, err := repo.FindByID(context.Background(), "7")

		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestRepositoryListAll(t *testing.T) {
	store := &fakeStore{records: []sheets.Record{userRecord("42"), userRecord("7")}}
	repo := NewRepository(store)

	list, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, list, 2)
}
