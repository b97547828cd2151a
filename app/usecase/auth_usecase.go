package usecase

import (
	"context"
	"log/slog"
	"time"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// AuthUsecase handles login, logout and session refresh against the
// identity provider, plus recording login times on the local user row.
type AuthUsecase struct {
	identity port.IdentityGateway
	users    port.UserRepository
	logger   *slog.Logger
}

// NewAuthUsecase creates a new AuthUsecase
func NewAuthUsecase(identity port.IdentityGateway, users port.UserRepository, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		identity: identity,
		users:    users,
		logger:   logger.With("component", "auth_usecase"),
	}
}

// Login verifies credentials with the identity provider and returns the
// identity plus the local role binding, when one exists.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.SessionContext, error) {
	identity, err := u.identity.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sessionCtx := &domain.SessionContext{Identity: identity}

	assignment, err := u.users.FindRoleAndCompany(ctx, identity.ID)
	if err != nil {
		// A provider identity without a local row can still sign in; the
		// gate will turn them away from protected pages.
		u.logger.Warn("no role assignment for identity",
			"identity_id", identity.ID,
			"error", err)
		return sessionCtx, nil
	}
	sessionCtx.Assignment = assignment

	// Last-login bookkeeping is best effort; a write failure must not
	// block the login itself.
	if user, err := u.users.FindByID(ctx, identity.ID); err == nil {
		user.RecordLogin(time.Now())
		if err := u.users.Update(ctx, user); err != nil {
			u.logger.Warn("failed to record login time",
				"user_id", user.ID,
				"error", err)
		}
	}

	return sessionCtx, nil
}

// Logout revokes the identity provider session.
func (u *AuthUsecase) Logout(ctx context.Context, sessionToken string) error {
	return u.identity.SignOut(ctx, sessionToken)
}

// WhoAmI resolves the current session into identity plus role binding.
func (u *AuthUsecase) WhoAmI(ctx context.Context, cookieHeader string) (*domain.SessionContext, error) {
	identity, err := u.identity.ResolveSession(ctx, cookieHeader)
	if err != nil {
		return nil, err
	}

	sessionCtx := &domain.SessionContext{Identity: identity}

	assignment, err := u.users.FindRoleAndCompany(ctx, identity.ID)
	if err == nil {
		sessionCtx.Assignment = assignment
	}

	return sessionCtx, nil
}

// RefreshSession extends the session's validity window. Failures are
// reported to the caller, which decides whether to ignore them; a portal
// page keeps working on an unrefreshed but still-valid session.
func (u *AuthUsecase) RefreshSession(ctx context.Context, sessionToken string) (*domain.Identity, error) {
	return u.identity.RefreshSession(ctx, sessionToken)
}
