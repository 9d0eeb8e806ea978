package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/handlers"
)

type InsightsRoutes struct {
	handler *handlers.InsightsHandler
}

func NewInsightsRoutes(handler *handlers.InsightsHandler) *InsightsRoutes {
	return &InsightsRoutes{handler: handler}
}

// RegisterRoutes registers insight and recommendation routes
func (r *InsightsRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/insights/:user_id", r.handler.GetInsights)
	router.GET("/api/recommendations/:user_id", r.handler.GetRecommendation)
}
