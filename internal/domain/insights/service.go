package insights

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/stats"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/config"
)

// Fixed replies for the degraded paths. Users never see a raw failure.
const (
	noEntriesInsight      = "Start logging your habits to unlock personalized insights! 🚀"
	backendDownInsight    = "Keep going! Every day you log your habits is a step toward a better version of yourself. 🌟"
	emptyHabitsSuggestion = "Start with simple habits like drinking 8 glasses of water a day or a 10 minute walk. 💧🚶"
	fallbackSuggestion    = "Consider adding a mindfulness habit, such as 5 minutes of daily meditation. 🧘"
)

// TextGenerator is the generation backend the pipeline talks to.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service is the insight pipeline. Both methods are total from the
// caller's perspective: every failure — store unreachable, backend
// unreachable, unparseable backend output — is absorbed into a usable,
// if degraded, result.
type Service interface {
	GenerateInsights(ctx context.Context, userID string) []AIInsight
	GetHabitRecommendation(ctx context.Context, habitNames []string) string
}

type service struct {
	habits     habits.Repository
	entries    entries.Repository
	stats      stats.Service
	gen        TextGenerator
	windowDays int
	logger     *zap.Logger
}

func NewService(habitsRepo habits.Repository, entriesRepo entries.Repository, statsService stats.Service, gen TextGenerator, cfg config.StatsConfig, logger *zap.Logger) Service {
	windowDays := cfg.WindowDays
	if windowDays <= 0 {
		windowDays = 30
	}

	return &service{
		habits:     habitsRepo,
		entries:    entriesRepo,
		stats:      statsService,
		gen:        gen,
		windowDays: windowDays,
		logger:     logger,
	}
}

func (s *service) GenerateInsights(ctx context.Context, userID string) []AIInsight {
	habitNames := s.habitNames(ctx, userID)

	windowEntries, err := s.entries.ListByUser(ctx, userID, s.windowDays)
	if err != nil {
		s.logger.Warn("Entries unavailable for insights, treating as empty",
			zap.String("user_id", userID),
			zap.Error(err))
		windowEntries = nil
	}

	// Nothing logged yet: skip generation entirely.
	if len(windowEntries) == 0 {
		return []AIInsight{newInsight(userID, noEntriesInsight, CategoryMotivation, 1.0)}
	}

	userStats := s.stats.GetUserStats(ctx, userID)
	promptCtx := buildPromptContext(habitNames, windowEntries, userStats)

	reply, err := s.gen.Generate(ctx, promptCtx.prompt())
	if err != nil {
		s.logger.Warn("Insight generation call failed",
			zap.String("user_id", userID),
			zap.Error(err))
		return []AIInsight{newInsight(userID, backendDownInsight, CategoryMotivation, 0.5)}
	}

	if parsed, ok := parseInsights(userID, reply); ok {
		s.logger.Info("Insights generated",
			zap.String("user_id", userID),
			zap.Int("count", len(parsed)))
		return parsed
	}

	// Not valid structured output: the text may still be worth showing,
	// so wrap it instead of discarding it.
	s.logger.Warn("Insight reply was not valid JSON, wrapping raw text",
		zap.String("user_id", userID))
	return []AIInsight{newInsight(userID, stripCodeFences(reply), CategoryMotivation, defaultConfidence)}
}

func (s *service) GetHabitRecommendation(ctx context.Context, habitNames []string) string {
	if len(habitNames) == 0 {
		return emptyHabitsSuggestion
	}

	prompt := fmt.Sprintf(
		"The user already has these habits: %s.\n\n"+
			"Recommend 1-2 new habits that complement them well.\n"+
			"Short, motivating answer (2 lines maximum). Include fitting emojis.\n",
		strings.Join(habitNames, ", "))

	reply, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("Habit recommendation call failed", zap.Error(err))
		return fallbackSuggestion
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return fallbackSuggestion
	}
	return reply
}

func (s *service) habitNames(ctx context.Context, userID string) []string {
	userHabits, err := s.habits.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("Habits unavailable for insights, treating as empty",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil
	}

	names := make([]string, 0, len(userHabits))
	for _, h := range userHabits {
		names = append(names, h.Name)
	}
	return names
}
