package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/stats"
)

// StatsHandler handles HTTP requests for user statistics
type StatsHandler struct {
	service stats.Service
}

// NewStatsHandler creates a new StatsHandler instance
func NewStatsHandler(service stats.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// GetUserStats godoc
// @Summary Get aggregate statistics for a user
// @Description Compute completion rate, streak and activity counters; a user with no data gets zeroed stats
// @Tags stats
// @Produce json
// @Param user_id path string true "Telegram user ID"
// @Success 200 {object} dto.StatsResponse "Stats computed"
// @Router /api/stats/{user_id} [get]
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID := c.Param("user_id")

	userStats := h.service.GetUserStats(c.Request.Context(), userID)

	c.JSON(http.StatusOK, gin.H{"data": StatsToResponse(userStats)})
}
