package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/handlers"
)

type StatsRoutes struct {
	handler *handlers.StatsHandler
}

func NewStatsRoutes(handler *handlers.StatsHandler) *StatsRoutes {
	return &StatsRoutes{handler: handler}
}

// RegisterRoutes registers all statistics routes
func (r *StatsRoutes) RegisterRoutes(router *gin.Engine) {
	stats := router.Group("/api/stats")

	stats.GET("/:user_id", r.handler.GetUserStats)
}
