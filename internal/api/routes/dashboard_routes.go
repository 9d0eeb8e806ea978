package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/handlers"
)

type DashboardRoutes struct {
	handler *handlers.DashboardHandler
}

func NewDashboardRoutes(handler *handlers.DashboardHandler) *DashboardRoutes {
	return &DashboardRoutes{handler: handler}
}

// RegisterRoutes registers the dashboard aggregation route
func (r *DashboardRoutes) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/dashboard/:user_id", gzip.Gzip(gzip.DefaultCompression), r.handler.GetDashboard)
}
