package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/stats"
	"github.com/habitflow-ai/habitflow/Backend_go/pkg/config"
)

type fakeHabitsRepo struct {
	habits []habits.Habit
	err    error
}

func (f *fakeHabitsRepo) Create(ctx context.Context, h *habits.Habit) error {
	return f.err
}

func (f *fakeHabitsRepo) ListByUser(ctx context.Context, userID string) ([]habits.Habit, error) {
	return f.habits, f.err
}

type fakeEntriesRepo struct {
	entries []entries.Entry
	err     error
}

func (f *fakeEntriesRepo) Append(ctx context.Context, e *entries.Entry) error {
	return f.err
}

func (f *fakeEntriesRepo) ListByUser(ctx context.Context, userID string, days int) ([]entries.Entry, error) {
	return f.entries, f.err
}

type fixedStats struct {
	stats stats.UserStats
}

func (f *fixedStats) GetUserStats(ctx context.Context, userID string) stats.UserStats {
	return f.stats
}

// scriptedGenerator is the test double for the generation backend. It
// counts calls so tests can assert the backend was not invoked.
type scriptedGenerator struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (g *scriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	return g.reply, g.err
}

func someEntries() []entries.Entry {
	now := time.Now()
	return []entries.Entry{
		{UserID: "42", HabitName: "Exercise", Completed: true, Date: now.AddDate(0, 0, -1)},
		{UserID: "42", HabitName: "Exercise", Completed: false, Date: now},
	}
}

func newTestService(habitsRepo habits.Repository, entriesRepo entries.Repository, gen TextGenerator) Service {
	return NewService(
		habitsRepo,
		entriesRepo,
		&fixedStats{stats: stats.UserStats{UserID: "42", CompletionRate: 0.5, StreakDays: 2}},
		gen,
		config.StatsConfig{WindowDays: 30},
		zap.NewNop(),
	)
}

func TestGenerateInsightsNoEntriesSkipsBackend(t *testing.T) {
	gen := &scriptedGenerator{}
	svc := newTestService(&fakeHabitsRepo{}, &fakeEntriesRepo{}, gen)

	got := svc.GenerateInsights(context.Background(), "42")

	require.Len(t, got, 1)
	assert.Equal(t, noEntriesInsight, got[0].Insight)
	assert.Equal(t, CategoryMotivation, got[0].Category)
	assert.Equal(t, 1.0, got[0].Confidence)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateInsightsParsesBackendReply(t *testing.T) {
	gen := &scriptedGenerator{
		reply: `[
			{"insight": "You crush Mondays", "category": "pattern", "confidence": 0.9},
			{"insight": "Try tracking in the morning", "category": "improvement", "confidence": 0.8},
			{"insight": "Two day streak, keep it up"}
		]`,
	}
	svc := newTestService(&fakeHabitsRepo{habits: []habits.Habit{{UserID: "42", Name: "Exercise"}}}, &fakeEntriesRepo{entries: someEntries()}, gen)

	got := svc.GenerateInsights(context.Background(), "42")

	require.Len(t, got, 3)
	assert.Equal(t, "You crush Mondays", got[0].Insight)
	assert.Equal(t, CategoryPattern, got[0].Category)
	assert.Equal(t, 0.9, got[0].Confidence)
	assert.Equal(t, CategoryImprovement, got[1].Category)
	// Missing category and confidence take their defaults.
	assert.Equal(t, CategoryMotivation, got[2].Category)
	assert.Equal(t, defaultConfidence, got[2].Confidence)
	for _, insight := range got {
		assert.Equal(t, "42", insight.UserID)
		assert.False(t, insight.GeneratedAt.IsZero())
	}
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateInsightsStripsMarkdownFencing(t *testing.T) {
	gen := &scriptedGenerator{
		reply: "```json\n[{\"insight\":\"x\",\"category\":\"pattern\",\"confidence\":0.9}]\n```",
	}
	svc := newTestService(&fakeHabitsRepo{}, &fakeEntriesRepo{entries: someEntries()}, gen)

	got := svc.GenerateInsights(context.Background(), "42")

	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].Insight)
	assert.Equal(t, CategoryPattern, got[0].Category)
	assert.Equal(t, 0.9, got[0].Confidence)
}

func TestGenerateInsightsWrapsUnparseableReply(t *testing.T) {
	gen := &scriptedGenerator{
		reply: "Honestly, just keep showing up every day. 💪",
	}
	svc := newTestService(&fakeHabitsRepo{}, &fakeEntriesRepo{entries: someEntries()}, gen)

	got := svc.GenerateInsights(context.Background(), "42")

	require.Len(t, got, 1)
	assert.Equal(t, "Honestly, just keep showing up every day. 💪", got[0].Insight)
	assert.Equal(t, CategoryMotivation, got[0].Category)
	assert.Equal(t, defaultConfidence, got[0].Confidence)
}

func TestGenerateInsightsBackendFailure(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("quota exceeded")}
	svc := newTestService(&fakeHabitsRepo{}, &fakeEntriesRepo{entries: someEntries()}, gen)

	got := svc.GenerateInsights(context.Background(), "42")

	require.Len(t, got, 1)
	assert.Equal(t, backendDownInsight, got[0].Insight)
	assert.Equal(t, 0.5, got[0].Confidence)
}

func TestGenerateInsightsStoreFailureStillAnswers(t *testing.T) {
	storeErr := errors.New("spreadsheet unreachable")
	gen := &scriptedGenerator{}
	svc := newTestService(&fakeHabitsRepo{err: storeErr}, &fakeEntriesRepo{err: storeErr}, gen)

	got := svc.GenerateInsights(context.Background(), "42")

	// Unreachable store degrades to the empty-data insight; the caller
	// never sees an error or an empty result.
	require.Len(t, got, 1)
	assert.Equal(t, noEntriesInsight, got[0].Insight)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateInsightsEmptyArrayWrapsReply(t *testing.T) {
	gen := &scriptedGenerator{reply: "[]"}
	svc := newTestService(&fakeHabitsRepo{}, &fakeEntriesRepo{entries: someEntries()}, gen)

	got := svc.GenerateInsights(context.Background(), "42")

	// A parsed-but-empty array would violate the non-empty contract, so
	// it is treated like unparseable output.
	require.Len(t, got, 1)
}

func TestGenerateInsightsClampsConfidence(t *testing.T) {
	gen := &scriptedGenerator{
		reply: `[
			{"insight": "a", "confidence": 1.5},
			{"insight": "b", "confidence": -0.2}
		]`,
	}
	svc := newTestService(&fakeHabitsRepo{}, &fakeEntriesRepo{entries: someEntries()}, gen)

	got := svc.GenerateInsights(context.Background(), "42")

	require.Len(t, got, 2)
	assert.Equal(t, 1.0, got[0].Confidence)
	assert.Equal(t, 0.0, got[1].Confidence)
}

func TestGetHabitRecommendation(t *testing.T) {
	t.Run("Empty habit list skips the backend", func(t *testing.T) {
		gen := &scriptedGenerator{}
		svc := newTestService(&fakeHabitsRepo{}, &fakeEntriesRepo{}, gen)

		got := svc.GetHabitRecommendation(context.Background(), nil)

		assert.Equal(t, emptyHabitsSuggestion, got)
		assert.Equal(t, 0, gen.calls)
	})

	t.Run("Backend reply passed through", func(t *testing.T) {
		gen := &scriptedGenerator{reply: "  Add some stretching after your runs. 🤸\n"}
		svc := newTestService(&fakeHabitsRepo{}, &fakeEntriesRepo{}, gen)

		got := svc.GetHabitRecommendation(context.Background(), []string{"Running", "Reading"})

		assert.Equal(t, "Add some stretching after your runs. 🤸", got)
		assert.Equal(t, 1, gen.calls)
		assert.Contains(t, gen.lastPrompt, "Running, Reading")
	})

	t.Run("Backend failure returns the canned suggestion", func(t *testing.T) {
		gen := &scriptedGenerator{err: errors.New("backend down")}
		svc := newTestService(&fakeHabitsRepo{}, &fakeEntriesRepo{}, gen)

		got := svc.GetHabitRecommendation(context.Background(), []string{"Running"})

		assert.Equal(t, fallbackSuggestion, got)
	})
}
