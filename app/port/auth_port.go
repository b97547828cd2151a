package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"portal-service/app/domain"
)

// AuthUsecase defines the authentication business logic exposed over HTTP
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*domain.SessionContext, error)
	Logout(ctx context.Context, sessionToken string) error
	WhoAmI(ctx context.Context, cookieHeader string) (*domain.SessionContext, error)
	RefreshSession(ctx context.Context, sessionToken string) (*domain.Identity, error)
}
