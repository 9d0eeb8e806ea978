package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/dto"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/entries"
)

const defaultEntriesWindowDays = 30

// EntriesHandler handles HTTP requests for tracking and listing entries
type EntriesHandler struct {
	service entries.Service
}

// NewEntriesHandler creates a new EntriesHandler instance
func NewEntriesHandler(service entries.Service) *EntriesHandler {
	return &EntriesHandler{service: service}
}

// TrackHabit godoc
// @Summary Record habit progress
// @Description Append a completion record for a habit; records are never updated or deleted
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.TrackHabitRequest true "Tracking request"
// @Success 201 {object} dto.EntryResponse "Entry recorded"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/track [post]
func (h *EntriesHandler) TrackHabit(c *gin.Context) {
	var req dto.TrackHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := entries.TrackHabitInput{
		UserID:    req.UserID,
		HabitName: req.HabitName,
		Completed: req.Completed,
		Notes:     req.Notes,
		Rating:    req.Rating,
	}

	created, err := h.service.TrackHabit(c.Request.Context(), input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if errors.Is(err, entries.ErrInvalidInput) {
			statusCode = http.StatusBadRequest
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": EntryToResponse(created)})
}

// ListEntries godoc
// @Summary List a user's recent entries
// @Description List entries for the given user within the requested day window
// @Tags entries
// @Produce json
// @Param user_id path string true "Telegram user ID"
// @Param days query int false "Window size in days" default(30)
// @Success 200 {array} dto.EntryResponse "Entries retrieved"
// @Failure 400 {object} map[string]string "Invalid days parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/entries/{user_id} [get]
func (h *EntriesHandler) ListEntries(c *gin.Context) {
	userID := c.Param("user_id")

	days := defaultEntriesWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	list, err := h.service.ListEntries(c.Request.Context(), userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": EntriesToResponse(list)})
}
