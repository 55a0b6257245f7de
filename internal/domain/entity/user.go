// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a locally registered account. It only exists in deployments that
// use the local storage backend; remote deployments never materialize users
// locally.
type User struct {
	ID           uuid.UUID // The unique identifier assigned by the local backend.
	Username     string    // The login name, unique across the users table.
	PasswordHash string    // The bcrypt hash of the password. The clear form is never stored.
	CreatedAt    time.Time // Timestamp of when this account was created.
}

// Identity is the canonical result of credential verification, regardless
// of which verifier variant produced it. For local tokens, ID is the user's
// uuid and Claims is nil. For the remote variant, Claims carries the raw
// identity object returned by the external provider.
type Identity struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Claims   map[string]any `json:"claims,omitempty"`
}
