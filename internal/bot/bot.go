package bot

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/insights"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/stats"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/user"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/config"
)

const pollTimeoutSeconds = 30

// Bot is the Telegram front end. It talks to the same domain services
// as the HTTP API.
type Bot struct {
	api      *tgbotapi.BotAPI
	users    user.Service
	habits   habits.Service
	entries  entries.Service
	stats    stats.Service
	insights insights.Service
	log      *logrus.Logger
}

// New creates the bot and authenticates against the Telegram API.
func New(cfg config.TelegramConfig, users user.Service, habitsService habits.Service, entriesService entries.Service, statsService stats.Service, insightsService insights.Service, log *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	api.Debug = cfg.Debug

	log.WithField("username", api.Self.UserName).Info("Telegram bot authorized")

	return &Bot{
		api:      api,
		users:    users,
		habits:   habitsService,
		entries:  entriesService,
		stats:    statsService,
		insights: insightsService,
		log:      log,
	}, nil
}

// Run consumes updates over long polling until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)
	b.log.Info("HabitFlow AI bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.WithField("panic", r).Error("Recovered from panic while handling update")
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	b.log.WithFields(logrus.Fields{
		"command": msg.Command(),
		"user_id": msg.From.ID,
	}).Info("Command received")

	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "help":
		b.handleHelp(msg)
	case "add_habit":
		b.handleAddHabit(ctx, msg)
	case "my_habits":
		b.handleMyHabits(ctx, msg)
	case "track":
		b.handleTrack(ctx, msg)
	case "quick_track":
		b.handleQuickTrack(ctx, msg)
	case "stats":
		b.handleStats(ctx, msg)
	case "insights":
		b.handleInsights(ctx, msg)
	default:
		b.reply(msg.Chat.ID, "Unknown command. Use /help to see what I can do.")
	}
}

// SendMessage delivers a plain message to a user by their Telegram ID.
// The reminder scheduler uses this.
func (b *Bot) SendMessage(userID string, text string) error {
	chatID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram user id %q: %w", userID, err)
	}
	return b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if err := b.send(msg); err != nil {
		b.log.WithError(err).Error("Failed to send message")
	}
}

func (b *Bot) send(c tgbotapi.Chattable) error {
	_, err := b.api.Send(c)
	return err
}
