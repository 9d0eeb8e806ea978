package user

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input CreateUserInput) (*User, error)
	GetUser(ctx context.Context, userID string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
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

// Register creates the user on first contact. Callers that register on
// every interaction (the bot does, on /start) treat ErrUserExists as a
// no-op rather than a failure.
func (s *service) Register(ctx context.Context, input CreateUserInput) (*User, error) {
	u := &User{
		UserID:    input.UserID,
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		JoinedAt:  time.Now(),
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("user_id", u.UserID),
		zap.String("username", u.Username))

	return u, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}
