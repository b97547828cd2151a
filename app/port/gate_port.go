package port

//go:generate mockgen -source=gate_port.go -destination=../mocks/mock_gate_port.go

import (
	"context"

	"portal-service/app/domain"
)

// Gate is the authorization checkpoint run once per inbound request.
// Evaluate performs at most two sequential external calls: identity
// resolution, then role lookup. It never writes.
type Gate interface {
	Evaluate(ctx context.Context, path, cookieHeader string) (domain.GateDecision, *domain.SessionContext)
}

// IdentityGateway is the anti-corruption layer between the domain and the
// identity provider driver.
type IdentityGateway interface {
	ResolveSession(ctx context.Context, cookieHeader string) (*domain.Identity, error)
	Authenticate(ctx context.Context, email, password string) (*domain.Identity, error)
	SignOut(ctx context.Context, sessionToken string) error
	RefreshSession(ctx context.Context, sessionToken string) (*domain.Identity, error)
}
