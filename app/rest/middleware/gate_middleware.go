package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// Context keys the gate sets for downstream handlers.
const (
	ContextKeySession  = "session_context"
	ContextKeyIdentity = "identity_id"
	ContextKeyRole     = "user_role"
)

var staticSuffixes = []string{
	".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp", ".ico", ".css", ".js",
}

// Health probes must answer even when the identity provider or the database
// is down; they never pass through the gate.
var healthPaths = map[string]struct{}{
	"/api/health": {},
	"/api/ready":  {},
	"/api/live":   {},
}

// GateMiddleware runs the request gate on every page request. Static assets
// and framework internals are skipped before the gate is consulted; they
// carry no data worth protecting and would otherwise multiply identity
// provider traffic per page load.
type GateMiddleware struct {
	gate   port.Gate
	logger *slog.Logger
}

// NewGateMiddleware creates a new gate middleware
func NewGateMiddleware(gate port.Gate, logger *slog.Logger) *GateMiddleware {
	return &GateMiddleware{
		gate:   gate,
		logger: logger.With("component", "gate_middleware"),
	}
}

// Guard evaluates the gate and either forwards the request with the session
// attached or redirects to the login or unauthorized page.
func (m *GateMiddleware) Guard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			if isStaticAsset(path) || isHealthEndpoint(path) {
				return next(c)
			}

			cookieHeader := c.Request().Header.Get("Cookie")
			decision, sessionCtx := m.gate.Evaluate(c.Request().Context(), path, cookieHeader)

			switch decision {
			case domain.GatePass:
				if sessionCtx != nil {
					c.Set(ContextKeySession, sessionCtx)
					c.Set(ContextKeyIdentity, sessionCtx.Identity.ID.String())
					if sessionCtx.Assignment != nil {
						c.Set(ContextKeyRole, string(sessionCtx.Assignment.Role))
					}
				}
				return next(c)

			case domain.GateRedirectLogin:
				// The original path is deliberately not carried along.
				return c.Redirect(http.StatusSeeOther, domain.LoginPath)

			case domain.GateRedirectUnauthorized:
				return c.Redirect(http.StatusSeeOther, domain.UnauthorizedPath)

			default:
				m.logger.Error("unknown gate decision", "decision", decision, "path", path)
				return c.Redirect(http.StatusSeeOther, domain.UnauthorizedPath)
			}
		}
	}
}

// SessionFromContext returns the session the gate attached, if any.
func SessionFromContext(c echo.Context) *domain.SessionContext {
	if sessionCtx, ok := c.Get(ContextKeySession).(*domain.SessionContext); ok {
		return sessionCtx
	}
	return nil
}

func isHealthEndpoint(path string) bool {
	_, ok := healthPaths[path]
	return ok
}

func isStaticAsset(path string) bool {
	if strings.HasPrefix(path, "/_next/static/") ||
		strings.HasPrefix(path, "/_next/image") ||
		path == "/favicon.ico" {
		return true
	}

	for _, suffix := range staticSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
