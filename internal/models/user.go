package models

import "time"

// User represents a user record in the database
// swagger:model User
type User struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key, assigned by the database
	Name      string    `json:"name" db:"name"`             // Display name
	Email     string    `json:"email" db:"email"`           // Unique email
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// UserCreate represents the JSON body for creating a user
// swagger:model UserCreate
type UserCreate struct {
	// User name
	// required: true
	// example: John Doe
	Name string `json:"name" validate:"required,max=100"`

	// User email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,max=100"`
}

// UserUpdate represents the JSON body for a partial user update.
// Nil fields are left unchanged.
// swagger:model UserUpdate
type UserUpdate struct {
	// New user name
	// example: Jane Doe
	Name *string `json:"name,omitempty" validate:"omitempty,max=100"`

	// New user email
	// example: jane@example.com
	Email *string `json:"email,omitempty" validate:"omitempty,max=100"`
}

// Apply returns a copy of user with every supplied field of u written over it.
func (u UserUpdate) Apply(user User) User {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	return user
}

// ChangesEmail reports whether u sets an email different from current.
func (u UserUpdate) ChangesEmail(current string) bool {
	return u.Email != nil && *u.Email != current
}
