package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
)

// Callback data prefixes for the quick-track inline keyboard. The habit
// name follows the prefix verbatim.
const (
	callbackTrackYes = "track_yes_"
	callbackTrackNo  = "track_no_"
)

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Acknowledge first so the client stops showing the spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.log.WithError(err).Warn("Failed to acknowledge callback")
	}

	userID := strconv.FormatInt(query.From.ID, 10)
	data := query.Data

	var habitName string
	var completed bool
	switch {
	case strings.HasPrefix(data, callbackTrackYes):
		habitName = strings.TrimPrefix(data, callbackTrackYes)
		completed = true
	case strings.HasPrefix(data, callbackTrackNo):
		habitName = strings.TrimPrefix(data, callbackTrackNo)
	default:
		b.log.WithField("data", data).Warn("Unknown callback data")
		return
	}

	_, err := b.entries.TrackHabit(ctx, entries.TrackHabitInput{
		UserID:    userID,
		HabitName: habitName,
		Completed: completed,
		Notes:     "Quick track",
	})

	var text string
	if err != nil {
		b.log.WithError(err).Error("Failed to track habit from callback")
		text = "❌ Something went wrong recording the habit. Please try again."
	} else {
		emoji := "❌"
		if completed {
			emoji = "✅"
		}
		text = fmt.Sprintf("%s *%s* recorded\n\n📊 Use `/stats` to see your progress", emoji, habitName)
	}

	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text)
	edit.ParseMode = tgbotapi.ModeMarkdown
	if err := b.send(edit); err != nil {
		b.log.WithError(err).Error("Failed to edit quick track message")
	}
}
