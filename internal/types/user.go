package types

import (
	"time"

	"github.com/google/uuid"
)

// User represents the core user entity in the domain.
type User struct {
	ID           uuid.UUID `json:"_id"`      // Unique identifier (UUID), store-assigned.
	Username     string    `json:"username"` // Display name, mutable, not unique.
	Email        string    `json:"email"`    // Unique email address used for login.
	PasswordHash string    `json:"-"`        // Hashed password (never exposed).
	IsAdmin      bool      `json:"isAdmin"`  // Admin flag, never settable via profile update.
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// PublicUser is the projection of a user record that is safe to return to a
// client. The password hash has no field here at all.
type PublicUser struct {
	ID       uuid.UUID `json:"_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"isAdmin"`
}

// Public returns the client-safe projection of u.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

// UpdateProfileParams defines the fields allowed for profile updates.
// Pointers distinguish "not provided" from an explicit empty value, allowing
// partial updates.
type UpdateProfileParams struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}
