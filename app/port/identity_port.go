package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"portal-service/app/domain"
)

// IdentityProvider defines the surface consumed from the external identity
// provider. Credential verification and session issuance live entirely on
// the provider side; this service only reads the results.
type IdentityProvider interface {
	// GetCurrentUser resolves the identity bound to the session carried in
	// the Cookie header. Returns domain.ErrSessionNotFound when no session
	// resolves.
	GetCurrentUser(ctx context.Context, cookieHeader string) (*domain.Identity, error)

	// SignInWithPassword authenticates email/password credentials and
	// returns the identity plus a session token for subsequent calls.
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Identity, error)

	// SignOut revokes the session identified by the token.
	SignOut(ctx context.Context, sessionToken string) error

	// RefreshSession extends the session's validity window. Callers decide
	// whether a refresh failure is fatal; resolving the identity never
	// depends on it.
	RefreshSession(ctx context.Context, sessionToken string) (*domain.Identity, error)

	// Health checks provider reachability.
	Health(ctx context.Context) error
}
