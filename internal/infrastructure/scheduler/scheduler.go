package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/user"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/config"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/logger"
)

// Sender delivers a reminder to a user. The Telegram bot implements it.
type Sender interface {
	SendMessage(userID string, text string) error
}

// ReminderText produces the message for a given hour. Injected so the
// scheduler stays free of presentation concerns.
type ReminderText func(hour int) string

// Scheduler nudges users who have not logged anything today. It checks
// once per hour and only acts on the configured reminder hours.
type Scheduler struct {
	users         user.Repository
	entries       entries.Repository
	sender        Sender
	text          ReminderText
	reminderHours map[int]bool
	logger        *logger.Logger
}

func NewScheduler(users user.Repository, entriesRepo entries.Repository, sender Sender, text ReminderText, cfg config.StatsConfig, log *logger.Logger) *Scheduler {
	hours := make(map[int]bool, len(cfg.ReminderHours))
	for _, h := range cfg.ReminderHours {
		hours[h] = true
	}

	return &Scheduler{
		users:         users,
		entries:       entriesRepo,
		sender:        sender,
		text:          text,
		reminderHours: hours,
		logger:        log,
	}
}

// Start runs the hourly loop until ctx is cancelled. Ticks are aligned
// to the top of the hour so a configured hour is hit exactly once.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Reminder scheduler initialized",
		zap.Int("reminder_hours", len(s.reminderHours)))

	go func() {
		for {
			now := time.Now()
			nextHour := now.Truncate(time.Hour).Add(time.Hour)

			select {
			case <-ctx.Done():
				s.logger.Info("Reminder scheduler stopped")
				return
			case <-time.After(nextHour.Sub(now)):
				if s.reminderHours[nextHour.Hour()] {
					s.sendReminders(ctx, nextHour)
				}
			}
		}
	}()
}

func (s *Scheduler) sendReminders(ctx context.Context, at time.Time) {
	start := time.Now()

	allUsers, err := s.users.ListAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users for reminders", zap.Error(err))
		return
	}

	sent := 0
	for _, u := range allUsers {
		if !u.IsActive {
			continue
		}
		if s.hasEntryToday(ctx, u.UserID, at) {
			continue
		}

		if err := s.sender.SendMessage(u.UserID, s.text(at.Hour())); err != nil {
			s.logger.Error("Failed to send reminder",
				zap.String("user_id", u.UserID),
				zap.Error(err))
			continue
		}
		sent++
	}

	s.logger.Info("Reminder run completed",
		zap.Int("users_checked", len(allUsers)),
		zap.Int("reminders_sent", sent),
		zap.Duration("duration", time.Since(start)))
}

// hasEntryToday reports whether the user already logged something on
// the calendar day of at. A store failure counts as logged so outages
// never turn into reminder spam.
func (s *Scheduler) hasEntryToday(ctx context.Context, userID string, at time.Time) bool {
	list, err := s.entries.ListByUser(ctx, userID, 1)
	if err != nil {
		s.logger.Warn("Failed to read entries for reminder check",
			zap.String("user_id", userID),
			zap.Error(err))
		return true
	}

	y, m, d := at.Date()
	for _, e := range list {
		ey, em, ed := e.Date.Date()
		if ey == y && em == m && ed == d {
			return true
		}
	}
	return false
}
