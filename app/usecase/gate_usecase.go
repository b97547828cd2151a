package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// GateUsecase is the request gate: the per-request authorization checkpoint
// for one portal. It performs at most two sequential external calls per
// evaluation (identity resolution, then role lookup), holds no state across
// requests, and never writes. Role lookups are deliberately uncached so a
// permission change takes effect on the very next request.
type GateUsecase struct {
	portal   domain.Portal
	identity port.IdentityGateway
	users    port.UserRepository
	logger   *slog.Logger
}

// NewGateUsecase creates the gate for a portal
func NewGateUsecase(
	portal domain.Portal,
	identity port.IdentityGateway,
	users port.UserRepository,
	logger *slog.Logger,
) *GateUsecase {
	return &GateUsecase{
		portal:   portal,
		identity: identity,
		users:    users,
		logger:   logger.With("component", "gate", "portal", string(portal)),
	}
}

// Evaluate decides what to do with a request to path carrying cookieHeader.
//
// Allow-listed prefixes pass without any session check. Otherwise the
// identity must resolve (else redirect to login, discarding the original
// path) and the local role must satisfy the portal's policy (else redirect
// to the unauthorized page). Ambiguous upstream state never falls through
// to a pass.
func (u *GateUsecase) Evaluate(ctx context.Context, path, cookieHeader string) (domain.GateDecision, *domain.SessionContext) {
	for _, prefix := range u.portal.AllowListPrefixes() {
		if strings.HasPrefix(path, prefix) {
			return domain.GatePass, nil
		}
	}

	identity, err := u.identity.ResolveSession(ctx, cookieHeader)
	if err != nil {
		if isUnauthenticated(err) {
			return domain.GateRedirectLogin, nil
		}

		// Provider errored rather than denying; fail closed.
		u.logger.Error("identity resolution errored, failing closed",
			"path", path,
			"error", err)
		return domain.GateRedirectUnauthorized, nil
	}

	assignment, err := u.users.FindRoleAndCompany(ctx, identity.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			u.logger.Error("role lookup errored, failing closed",
				"identity_id", identity.ID,
				"error", err)
		}
		return domain.GateRedirectUnauthorized, nil
	}

	if domain.Decide(u.portal, assignment.Role, assignment.CompanyID) == domain.PolicyDeny {
		u.logger.Info("request denied by role policy",
			"identity_id", identity.ID,
			"role", assignment.Role,
			"path", path)
		return domain.GateRedirectUnauthorized, nil
	}

	return domain.GatePass, &domain.SessionContext{
		Identity:   identity,
		Assignment: assignment,
	}
}

// isUnauthenticated reports whether the error means "no resolvable session"
// as opposed to an upstream failure.
func isUnauthenticated(err error) bool {
	return errors.Is(err, domain.ErrSessionNotFound) ||
		errors.Is(err, domain.ErrSessionExpired) ||
		errors.Is(err, domain.ErrSessionInactive) ||
		errors.Is(err, domain.ErrMissingIdentity)
}
