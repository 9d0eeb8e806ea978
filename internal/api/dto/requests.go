package dto

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	UserID    string `json:"user_id" binding:"required" example:"123456789"`
	Username  string `json:"username" example:"janedoe"`
	FirstName string `json:"first_name" example:"Jane"`
	LastName  string `json:"last_name" example:"Doe"`
}

// CreateHabitRequest is the payload for creating a habit.
type CreateHabitRequest struct {
	UserID          string `json:"user_id" binding:"required" example:"123456789"`
	Name            string `json:"name" binding:"required" example:"Morning run"`
	Description     string `json:"description" example:"5km before work"`
	TargetFrequency string `json:"target_frequency" example:"daily"`
}

// TrackHabitRequest is the payload for recording habit progress.
type TrackHabitRequest struct {
	UserID    string `json:"user_id" binding:"required" example:"123456789"`
	HabitName string `json:"habit_name" binding:"required" example:"Morning run"`
	Completed bool   `json:"completed" example:"true"`
	Notes     string `json:"notes" example:"felt great"`
	Rating    *int   `json:"rating,omitempty" example:"4"`
}
