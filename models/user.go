package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on creation and immutable afterwards.
	UserID int64 `json:"-"`

	// Email is the unique, normalized (trimmed, lowercased) identifier
	// used during authentication.
	Email string `json:"email"`

	// Password carries the plaintext password on inbound requests only.
	// It is never persisted and never serialized back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in place of the plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
