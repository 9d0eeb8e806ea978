package routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/handlers"
)

type EntriesRoutes struct {
	handler *handlers.EntriesHandler
}

func NewEntriesRoutes(handler *handlers.EntriesHandler) *EntriesRoutes {
	return &EntriesRoutes{handler: handler}
}

// RegisterRoutes registers all entry-listing routes
func (r *EntriesRoutes) RegisterRoutes(router *gin.Engine) {
	entries := router.Group("/api/entries")

	entries.GET("/:user_id", gzip.Gzip(gzip.DefaultCompression), r.handler.ListEntries)
}
