package models

import "time"

// User represents an account entity used for authentication.
// It is the identity record persisted by the credential store.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique user login identifier.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// Plaintext passwords are never stored in this field.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the transient username/password pair received by the
// register and login endpoints. It lives only for the duration of a request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
