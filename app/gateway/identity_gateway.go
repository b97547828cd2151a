package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// IdentityGateway implements port.IdentityGateway. It acts as an
// anti-corruption layer between the domain and the identity provider driver.
type IdentityGateway struct {
	provider port.IdentityProvider
	logger   *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(provider port.IdentityProvider, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		provider: provider,
		logger:   logger.With("component", "identity_gateway"),
	}
}

// ResolveSession resolves the identity bound to the request's session cookie.
func (g *IdentityGateway) ResolveSession(ctx context.Context, cookieHeader string) (*domain.Identity, error) {
	identity, err := g.provider.GetCurrentUser(ctx, cookieHeader)
	if err != nil {
		// Expected on every unauthenticated request; debug level only.
		g.logger.Debug("session resolution failed", "error", err)
		return nil, err
	}

	return identity, nil
}

// Authenticate verifies credentials with the identity provider.
func (g *IdentityGateway) Authenticate(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := g.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		g.logger.Warn("authentication failed", "email", email, "error", err)
		return nil, err
	}

	g.logger.Info("authentication succeeded", "identity_id", identity.ID)
	return identity, nil
}

// SignOut revokes the identity provider session.
func (g *IdentityGateway) SignOut(ctx context.Context, sessionToken string) error {
	if err := g.provider.SignOut(ctx, sessionToken); err != nil {
		g.logger.Error("sign-out failed", "error", err)
		return fmt.Errorf("failed to sign out: %w", err)
	}

	return nil
}

// RefreshSession extends the session's validity window. The caller decides
// whether a refresh failure matters; this gateway only reports it.
func (g *IdentityGateway) RefreshSession(ctx context.Context, sessionToken string) (*domain.Identity, error) {
	identity, err := g.provider.RefreshSession(ctx, sessionToken)
	if err != nil {
		g.logger.Warn("session refresh failed", "error", err)
		return nil, fmt.Errorf("failed to refresh session: %w", err)
	}

	g.logger.Info("session refreshed", "identity_id", identity.ID, "expires_at", identity.ExpiresAt)
	return identity, nil
}
