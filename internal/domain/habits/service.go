package habits

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Service interface {
	CreateHabit(ctx context.Context, input CreateHabitInput) (*Habit, error)
	ListHabits(ctx context.Context, userID string) ([]Habit, error)
	HabitNames(ctx context.Context, userID string) ([]string, error)
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

func (s *service) CreateHabit(ctx context.Context, input CreateHabitInput) (*Habit, error) {
	if input.Name == "" || input.UserID == "" {
		return nil, ErrInvalidInput
	}

	frequency := input.TargetFrequency
	if frequency == "" {
		frequency = FrequencyDaily
	}
	if !frequency.Valid() {
		return nil, ErrInvalidInput
	}

	habit := &Habit{
		UserID:          input.UserID,
		Name:            input.Name,
		Description:     input.Description,
		TargetFrequency: frequency,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	s.logger.Info("Habit created",
		zap.String("user_id", habit.UserID),
		zap.String("name", habit.Name),
		zap.String("target_frequency", string(habit.TargetFrequency)))

	return habit, nil
}

func (s *service) ListHabits(ctx context.Context, userID string) ([]Habit, error) {
	return s.repo.ListByUser(ctx, userID)
}

// HabitNames returns just the habit names, in creation order. The
// insight pipeline and the recommendation endpoint only need names.
func (s *service) HabitNames(ctx context.Context, userID string) ([]string, error) {
	habits, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(habits))
	for _, h := range habits {
		names = append(names, h.Name)
	}
	return names, nil
}
