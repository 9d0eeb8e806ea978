package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/dto"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/insights"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/stats"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/user"
)

const dashboardWindowDays = 30

// DashboardHandler aggregates the per-user views into one response.
type DashboardHandler struct {
	users    user.Service
	habits   habits.Service
	entries  entries.Service
	stats    stats.Service
	insights insights.Service
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(users user.Service, habitsService habits.Service, entriesService entries.Service, statsService stats.Service, insightsService insights.Service) *DashboardHandler {
	return &DashboardHandler{
		users:    users,
		habits:   habitsService,
		entries:  entriesService,
		stats:    statsService,
		insights: insightsService,
	}
}

// GetDashboard godoc
// @Summary Get the full dashboard for a user
// @Description Habits, recent entries, stats and insights in one round trip
// @Tags dashboard
// @Produce json
// @Param user_id path string true "Telegram user ID"
// @Success 200 {object} dto.DashboardResponse "Dashboard assembled"
// @Router /api/dashboard/{user_id} [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	// Each section degrades independently so one unreachable sheet does
	// not blank the whole dashboard.
	resp := dto.DashboardResponse{
		Habits:  []dto.HabitResponse{},
		Entries: []dto.EntryResponse{},
	}

	if u, err := h.users.GetUser(ctx, userID); err == nil && u != nil {
		resp.User = UserToResponse(u)
	}

	if habitList, err := h.habits.ListHabits(ctx, userID); err == nil {
		resp.Habits = HabitsToResponse(habitList)
	}

	if entryList, err := h.entries.ListEntries(ctx, userID, dashboardWindowDays); err == nil {
		resp.Entries = EntriesToResponse(entryList)
	}

	resp.Stats = StatsToResponse(h.stats.GetUserStats(ctx, userID))
	resp.Insights = InsightsToResponse(h.insights.GenerateInsights(ctx, userID))

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
