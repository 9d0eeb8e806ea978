package user

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/infrastructure/persistence/sheets"
)

var ErrUserExists = errors.New("user already exists")

// Repository provides access to the users collection.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, userID string) (*User, error)
	ListAll(ctx context.Context) ([]User, error)
}

type repository struct {
	store sheets.Store
}

func NewRepository(store sheets.Store) Repository {
	return &repository{store: store}
}

// Create appends the user after a read-then-append existence check.
// The check is not atomic: two near-simultaneous registrations for the
// same user can both pass it and produce a duplicate row. The store has
// no conditional append, so this is an accepted limitation.
func (r *repository) Create(ctx context.Context, u *User) error {
	records, err := r.store.ReadAll(ctx, sheets.SheetUsers)
	if err != nil {
		return err
	}

	for _, record := range records {
		if record.Get("user_id") == u.UserID {
			return ErrUserExists
		}
	}

	row := []string{
		u.UserID,
		u.Username,
		u.FirstName,
		u.LastName,
		u.JoinedAt.Format(time.RFC3339),
		strconv.FormatBool(u.IsActive),
	}
	return r.store.AppendRow(ctx, sheets.SheetUsers, row)
}

func (r *repository) FindByID(ctx context.Context, userID string) (*User, error) {
	records, err := r.store.ReadAll(ctx, sheets.SheetUsers)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.Get("user_id") == userID {
			u := recordToUser(record)
			return &u, nil
		}
	}
	return nil, nil
}

func (r *repository) ListAll(ctx context.Context) ([]User, error) {
	records, err := r.store.ReadAll(ctx, sheets.SheetUsers)
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(records))
	for _, record := range records {
		users = append(users, recordToUser(record))
	}
	return users, nil
}

func recordToUser(record sheets.Record) User {
	joinedAt, _ := time.Parse(time.RFC3339, record.Get("joined_at"))
	return User{
		UserID:    record.Get("user_id"),
		Username:  record.Get("username"),
		FirstName: record.Get("first_name"),
		LastName:  record.Get("last_name"),
		JoinedAt:  joinedAt,
		IsActive:  strings.EqualFold(record.Get("is_active"), "true"),
	}
}
