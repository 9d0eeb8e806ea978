package user

import (
	"time"
)

// User represents a tracked user. UserID is the Telegram user ID as a
// string and is the only identity the system knows about.
type User struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	JoinedAt  time.Time `json:"joined_at"`
	IsActive  bool      `json:"is_active"`
}

// CreateUserInput represents the input for registering a new user
type CreateUserInput struct {
	UserID    string
	Username  string
	FirstName string
	LastName  string
}
