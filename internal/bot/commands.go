package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/insights"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/user"
)

// positiveStatuses are the /track status words that count as completed.
var positiveStatuses = map[string]bool{
	"completed": true,
	"done":      true,
	"yes":       true,
	"si":        true,
	"sí":        true,
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	from := msg.From

	_, err := b.users.Register(ctx, user.CreateUserInput{
		UserID:    strconv.FormatInt(from.ID, 10),
		Username:  from.UserName,
		FirstName: from.FirstName,
		LastName:  from.LastName,
	})
	if err != nil && !errors.Is(err, user.ErrUserExists) {
		b.log.WithError(err).Error("Failed to register user on /start")
	}

	welcome := fmt.Sprintf(`Welcome %s! Welcome to HabitFlow AI 🎉

I'm your personal assistant for habit tracking. I can help you:

- Create and follow your habits
- Analyze your progress
- Give you personalized AI insights
- Visualize your patterns

*Main commands:*
/add_habit - Add a new habit
/my_habits - View your current habits
/track - Record progress of a habit
/stats - View your statistics
/insights - Get AI analysis
/help - See all commands

Let's start your journey to better habits!`, from.FirstName)

	b.reply(msg.Chat.ID, welcome)
}

func (b *Bot) handleHelp(msg *tgbotapi.Message) {
	help := `📚 *HabitFlow AI command guide*

*🎯 Habit management:*
/add_habit [name] - Create a new habit
  Example: ` + "`/add_habit Exercise`" + `

/my_habits - List your habits

*📝 Tracking:*
/track [habit] [status] - Record progress
  Example: ` + "`/track Exercise completed`" + `
  Statuses: completed, no, partial

/quick_track - Quick tracking for all your habits

*📊 Analysis:*
/stats - Your overall statistics
/insights - Personalized AI analysis

*❓ Help:*
/help - This guide

Need something specific? Just ask! 😊`

	b.reply(msg.Chat.ID, help)
}

func (b *Bot) handleAddHabit(ctx context.Context, msg *tgbotapi.Message) {
	name := strings.TrimSpace(msg.CommandArguments())
	if name == "" {
		b.reply(msg.Chat.ID, "Please give the habit a name.\nExample: `/add_habit Daily exercise`")
		return
	}

	_, err := b.habits.CreateHabit(ctx, habits.CreateHabitInput{
		UserID:          strconv.FormatInt(msg.From.ID, 10),
		Name:            name,
		Description:     fmt.Sprintf("Habit: %s", name),
		TargetFrequency: habits.FrequencyDaily,
	})
	if err != nil {
		b.log.WithError(err).Warn("Failed to create habit")
		b.reply(msg.Chat.ID, fmt.Sprintf("❌ Could not create habit '%s'. Maybe it already exists, or something went wrong.", name))
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("✅ Habit '%s' created!\n\nNow record your progress with:\n`/track %s completed`", name, name))
}

func (b *Bot) handleMyHabits(ctx context.Context, msg *tgbotapi.Message) {
	userID := strconv.FormatInt(msg.From.ID, 10)

	list, err := b.habits.ListHabits(ctx, userID)
	if err != nil {
		b.log.WithError(err).Error("Failed to list habits")
		b.reply(msg.Chat.ID, "❌ Could not load your habits right now. Please try again.")
		return
	}

	if len(list) == 0 {
		b.reply(msg.Chat.ID, "📝 You have no habits yet.\n\nCreate your first one with:\n`/add_habit [habit name]`")
		return
	}

	var sb strings.Builder
	sb.WriteString("🎯 *Your current habits:*\n\n")
	for i, h := range list {
		fmt.Fprintf(&sb, "%d. *%s*\n", i+1, h.Name)
		if h.Description != "" {
			fmt.Fprintf(&sb, "   📄 %s\n", h.Description)
		}
		fmt.Fprintf(&sb, "   📅 Frequency: %s\n\n", h.TargetFrequency)
	}
	sb.WriteString("💡 Use `/track [habit] [status]` to record your progress")

	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) handleTrack(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 2 {
		b.reply(msg.Chat.ID, "Wrong format. Use:\n`/track [habit] [status]`\n\nValid statuses: completed, no, partial\nExample: `/track Exercise completed`")
		return
	}

	habitName := args[0]
	status := strings.ToLower(strings.Join(args[1:], " "))
	completed := positiveStatuses[status]

	_, err := b.entries.TrackHabit(ctx, entries.TrackHabitInput{
		UserID:    strconv.FormatInt(msg.From.ID, 10),
		HabitName: habitName,
		Completed: completed,
		Notes:     fmt.Sprintf("Status: %s", status),
	})
	if err != nil {
		b.log.WithError(err).Error("Failed to track habit")
		b.reply(msg.Chat.ID, "❌ Something went wrong recording your habit. Please try again.")
		return
	}

	emoji := "❌"
	if completed {
		emoji = "✅"
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("%s *%s* recorded as '%s'\n\n📊 Use `/stats` to see your overall progress", emoji, habitName, status))
}

func (b *Bot) handleQuickTrack(ctx context.Context, msg *tgbotapi.Message) {
	userID := strconv.FormatInt(msg.From.ID, 10)

	list, err := b.habits.ListHabits(ctx, userID)
	if err != nil {
		b.log.WithError(err).Error("Failed to list habits for quick track")
		b.reply(msg.Chat.ID, "❌ Could not load your habits right now. Please try again.")
		return
	}

	if len(list) == 0 {
		b.reply(msg.Chat.ID, "You have no habits to track. Create one first with `/add_habit [name]`")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, h := range list {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ "+h.Name, callbackTrackYes+h.Name),
			tgbotapi.NewInlineKeyboardButtonData("❌ "+h.Name, callbackTrackNo+h.Name),
		))
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, "📝 *Quick habit tracking*\n\nPick the status of each habit:")
	reply.ParseMode = tgbotapi.ModeMarkdown
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if err := b.send(reply); err != nil {
		b.log.WithError(err).Error("Failed to send quick track keyboard")
	}
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) {
	userID := strconv.FormatInt(msg.From.ID, 10)
	userStats := b.stats.GetUserStats(ctx, userID)

	var cheer string
	switch {
	case userStats.CompletionRate > 0.8:
		cheer = "🏆 Excellent work!"
	case userStats.CompletionRate > 0.5:
		cheer = "💪 Keep it up, you're on the right track!"
	default:
		cheer = "🚀 Every day is a new opportunity!"
	}

	text := fmt.Sprintf(`📊 *Your statistics (last 30 days)*

🎯 Total habits: *%d*
✅ Active habits: *%d*
📈 Completion rate: *%.1f%%*
🔥 Current streak: *%d days*
🕐 Last activity: *%s*

%s

💡 Use /insights to get a personalized AI analysis`,
		userStats.TotalHabits,
		userStats.ActiveHabits,
		userStats.CompletionRate*100,
		userStats.StreakDays,
		userStats.LastActivity.Format("02/01/2006"),
		cheer)

	b.reply(msg.Chat.ID, text)
}

func (b *Bot) handleInsights(ctx context.Context, msg *tgbotapi.Message) {
	userID := strconv.FormatInt(msg.From.ID, 10)

	b.reply(msg.Chat.ID, "AI analyzing your habits... Please wait...")

	generated := b.insights.GenerateInsights(ctx, userID)

	var sb strings.Builder
	sb.WriteString("🧠 *Personalized AI insights:*\n\n")
	for i, insight := range generated {
		fmt.Fprintf(&sb, "%s *Insight #%d*\n%s\n\n", categoryEmoji(insight.Category), i+1, insight.Insight)
	}

	names, err := b.habits.HabitNames(ctx, userID)
	if err != nil {
		b.log.WithError(err).Warn("Failed to load habit names for recommendation")
		names = nil
	}
	if len(names) > 0 {
		recommendation := b.insights.GetHabitRecommendation(ctx, names)
		fmt.Fprintf(&sb, "🎯 *New habit recommendation:*\n%s", recommendation)
	}

	b.reply(msg.Chat.ID, sb.String())
}

func categoryEmoji(c insights.Category) string {
	switch c {
	case insights.CategoryMotivation:
		return "💪"
	case insights.CategoryImprovement:
		return "📈"
	case insights.CategoryPattern:
		return "🔍"
	case insights.CategoryAchievement:
		return "🏆"
	}
	return "💡"
}

// ReminderText is what the scheduler sends to users who have not
// logged anything today.
func ReminderText(hour int) string {
	switch {
	case hour < 11:
		return "☀️ Good morning! Don't forget to log your habits today. A quick `/quick_track` is all it takes."
	case hour < 15:
		return "🕐 Midday check-in: have you worked on your habits yet? Log them with `/quick_track`."
	case hour < 20:
		return "🌆 The day is moving on. There is still time to complete your habits! `/quick_track`"
	default:
		return "🌙 Last call of the day: log your habits before bed with `/quick_track`."
	}
}
