package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/dto"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/insights"
)

// InsightsHandler handles HTTP requests for AI insights and
// recommendations
type InsightsHandler struct {
	service insights.Service
	habits  habits.Service
}

// NewInsightsHandler creates a new InsightsHandler instance
func NewInsightsHandler(service insights.Service, habitsService habits.Service) *InsightsHandler {
	return &InsightsHandler{service: service, habits: habitsService}
}

// GetInsights godoc
// @Summary Generate insights for a user
// @Description Generate AI insights from the user's recent activity; always returns at least one insight
// @Tags insights
// @Produce json
// @Param user_id path string true "Telegram user ID"
// @Success 200 {array} dto.InsightResponse "Insights generated"
// @Router /api/insights/{user_id} [get]
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	userID := c.Param("user_id")

	list := h.service.GenerateInsights(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{"data": InsightsToResponse(list)})
}

// GetRecommendation godoc
// @Summary Recommend a new habit
// @Description Suggest a complementary habit based on the user's existing habits
// @Tags insights
// @Produce json
// @Param user_id path string true "Telegram user ID"
// @Success 200 {object} dto.RecommendationResponse "Recommendation generated"
// @Router /api/recommendations/{user_id} [get]
func (h *InsightsHandler) GetRecommendation(c *gin.Context) {
	userID := c.Param("user_id")

	names, err := h.habits.HabitNames(c.Request.Context(), userID)
	if err != nil {
		// Recommendations never fail; an unreachable store behaves like
		// a user with no habits.
		names = nil
	}

	recommendation := h.service.GetHabitRecommendation(c.Request.Context(), names)

	c.JSON(http.StatusOK, gin.H{"data": dto.RecommendationResponse{Recommendation: recommendation}})
}
