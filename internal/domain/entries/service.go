package entries

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Service interface {
	TrackHabit(ctx context.Context, input TrackHabitInput) (*Entry, error)
	ListEntries(ctx context.Context, userID string, days int) ([]Entry, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

func (s *service) TrackHabit(ctx context.Context, input TrackHabitInput) (*Entry, error) {
	if input.UserID == "" || input.HabitName == "" {
		return nil, ErrInvalidInput
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, ErrInvalidInput
	}

	entry := &Entry{
		UserID:    input.UserID,
		HabitName: input.HabitName,
		Completed: input.Completed,
		Date:      time.Now(),
		Notes:     input.Notes,
		Rating:    input.Rating,
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("Habit entry recorded",
		zap.String("user_id", entry.UserID),
		zap.String("habit_name", entry.HabitName),
		zap.Bool("completed", entry.Completed))

	return entry, nil
}

func (s *service) ListEntries(ctx context.Context, userID string, days int) ([]Entry, error) {
	return s.repo.ListByUser(ctx, userID, days)
}
