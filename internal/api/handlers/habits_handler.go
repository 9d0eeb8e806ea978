package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitflow-ai/habitflow/Backend_go/internal/api/dto"
	"github.com/habitflow-ai/habitflow/Backend_go/internal/domain/habits"
)

// HabitsHandler handles HTTP requests for habits operations
type HabitsHandler struct {
	service habits.Service
}

// NewHabitsHandler creates a new HabitsHandler instance
func NewHabitsHandler(service habits.Service) *HabitsHandler {
	return &HabitsHandler{service: service}
}

// CreateHabit godoc
// @Summary Create a new habit
// @Description Create a new habit for a user; habit names are unique per user
// @Tags habits
// @Accept json
// @Produce json
// @Param habit body dto.CreateHabitRequest true "Habit creation request"
// @Success 201 {object} dto.HabitResponse "Habit created"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Habit already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits [post]
func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	var req dto.CreateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := habits.CreateHabitInput{
		UserID:          req.UserID,
		Name:            req.Name,
		Description:     req.Description,
		TargetFrequency: habits.Frequency(req.TargetFrequency),
	}

	created, err := h.service.CreateHabit(c.Request.Context(), input)
	if err != nil {
		statusCode := http.StatusInternalServerError
		switch {
		case errors.Is(err, habits.ErrInvalidInput):
			statusCode = http.StatusBadRequest
		case errors.Is(err, habits.ErrHabitExists):
			statusCode = http.StatusConflict
		}
		c.JSON(statusCode, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": HabitToResponse(created)})
}

// ListHabits godoc
// @Summary List a user's habits
// @Description List all habits registered for the given user
// @Tags habits
// @Produce json
// @Param user_id path string true "Telegram user ID"
// @Success 200 {array} dto.HabitResponse "Habits retrieved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/habits/{user_id} [get]
func (h *HabitsHandler) ListHabits(c *gin.Context) {
	userID := c.Param("user_id")

	list, err := h.service.ListHabits(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": HabitsToResponse(list)})
}
