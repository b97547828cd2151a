package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the identity provider's notion of a signed-in principal.
// Its lifecycle is owned entirely by the provider; this service only reads it.
type Identity struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	SessionID     string    `json:"session_id"`
	SessionToken  string    `json:"-"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// SessionContext carries the resolved identity plus the local role binding
// for the duration of a single request.
type SessionContext struct {
	Identity   *Identity       `json:"identity"`
	Assignment *RoleAssignment `json:"assignment,omitempty"`
}
