package models

import "time"

// User event types.
const (
	UserCreated = "user.created"
	UserUpdated = "user.updated"
	UserDeleted = "user.deleted"
)

// UserEvent is published to the message broker after a successful mutation.
type UserEvent struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
