package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/handlers"
)

type HabitsRoutes struct {
	handler *handlers.HabitsHandler
	entries *handlers.EntriesHandler
}

func NewHabitsRoutes(handler *handlers.HabitsHandler, entries *handlers.EntriesHandler) *HabitsRoutes {
	return &HabitsRoutes{handler: handler, entries: entries}
}

// RegisterRoutes registers all habit-related routes
func (r *HabitsRoutes) RegisterRoutes(router *gin.Engine) {
	habits := router.Group("/api/habits")

	habits.POST("", r.handler.CreateHabit)
	// Fixed route before the parameterized one so "track" never matches
	// as a user ID.
	habits.POST("/track", r.entries.TrackHabit)
	habits.GET("/:user_id", gzip.Gzip(gzip.DefaultCompression), r.handler.ListHabits)
}
