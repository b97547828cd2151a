package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// IdentityProviderAdapter adapts the Kratos client to port.IdentityProvider
type IdentityProviderAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewIdentityProviderAdapter creates a new adapter
func NewIdentityProviderAdapter(client *Client, logger *slog.Logger) port.IdentityProvider {
	return &IdentityProviderAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// GetCurrentUser resolves the identity bound to the session cookie.
func (a *IdentityProviderAdapter) GetCurrentUser(ctx context.Context, cookieHeader string) (*domain.Identity, error) {
	if cookieHeader == "" {
		return nil, domain.ErrSessionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	session, resp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		Cookie(cookieHeader).
		Execute()
	if err != nil {
		return nil, a.transformSessionError(resp, err)
	}

	return sessionToIdentity(session, "")
}

// SignInWithPassword authenticates credentials via a native login flow.
func (a *IdentityProviderAdapter) SignInWithPassword(ctx context.Context, email, password string) (*domain.Identity, error) {
	flow, resp, err := a.client.PublicAPI().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		a.logger.Error("failed to create login flow",
			"error", err,
			"http_status", statusOf(resp))
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}

	login, resp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized) {
			return nil, domain.NewAuthError(domain.ErrCodeInvalidCredentials,
				"credentials rejected by identity provider", domain.ErrInvalidCredentials)
		}
		a.logger.Error("login flow submission failed",
			"error", err,
			"http_status", statusOf(resp))
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	token := ""
	if login.SessionToken != nil {
		token = *login.SessionToken
	}

	return sessionToIdentity(&login.Session, token)
}

// SignOut revokes the session identified by the token.
func (a *IdentityProviderAdapter) SignOut(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}

	resp, err := a.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(kratosclient.PerformNativeLogoutBody{SessionToken: sessionToken}).
		Execute()
	if err != nil {
		// An already-expired session is not a failure worth surfacing.
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil
		}
		return fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	return nil
}

// RefreshSession extends the session's validity window via the admin API.
func (a *IdentityProviderAdapter) RefreshSession(ctx context.Context, sessionToken string) (*domain.Identity, error) {
	session, resp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		return nil, a.transformSessionError(resp, err)
	}

	extended, resp, err := a.client.AdminAPI().IdentityAPI.
		ExtendSession(ctx, session.Id).
		Execute()
	if err != nil {
		a.logger.Error("session extension failed",
			"session_id", session.Id,
			"http_status", statusOf(resp),
			"error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	return sessionToIdentity(extended, sessionToken)
}

// Health checks provider reachability.
func (a *IdentityProviderAdapter) Health(ctx context.Context) error {
	return a.client.HealthCheck(ctx)
}

func (a *IdentityProviderAdapter) transformSessionError(resp *http.Response, err error) error {
	if resp != nil {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return domain.ErrSessionNotFound
		}
		return fmt.Errorf("%w: kratos returned status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}
	return fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
}

// sessionToIdentity converts a Kratos session to a domain identity
func sessionToIdentity(session *kratosclient.Session, sessionToken string) (*domain.Identity, error) {
	if session.Active != nil && !*session.Active {
		return nil, domain.ErrSessionInactive
	}

	if session.Identity == nil {
		return nil, domain.ErrMissingIdentity
	}

	identityID, err := uuid.Parse(session.Identity.Id)
	if err != nil {
		return nil, fmt.Errorf("invalid identity ID from provider: %w", err)
	}

	email := ""
	if traits, ok := session.Identity.Traits.(map[string]interface{}); ok {
		if emailVal, ok := traits["email"].(string); ok {
			email = emailVal
		}
	}

	emailVerified := false
	for _, addr := range session.Identity.VerifiableAddresses {
		if addr.Value == email && addr.Verified {
			emailVerified = true
			break
		}
	}

	var expiresAt time.Time
	if session.ExpiresAt != nil {
		expiresAt = *session.ExpiresAt
	}

	return &domain.Identity{
		ID:            identityID,
		Email:         email,
		EmailVerified: emailVerified,
		SessionID:     session.Id,
		SessionToken:  sessionToken,
		ExpiresAt:     expiresAt,
	}, nil
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
