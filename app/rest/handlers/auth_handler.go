package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

// LoginRequest is the password login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the identity, session token and local role binding
type LoginResponse struct {
	Identity     *domain.Identity       `json:"identity"`
	Assignment   *domain.RoleAssignment `json:"assignment,omitempty"`
	SessionToken string                 `json:"session_token"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	sessionCtx, err := h.authUsecase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("login failed",
			"email", req.Email,
			"ip", c.RealIP(),
			"error", err)
		return jsonError(c, err, "login failed")
	}

	h.logger.Info("login succeeded",
		"identity_id", sessionCtx.Identity.ID,
		"ip", c.RealIP())

	return c.JSON(http.StatusOK, LoginResponse{
		Identity:     sessionCtx.Identity,
		Assignment:   sessionCtx.Assignment,
		SessionToken: sessionCtx.Identity.SessionToken,
	})
}

// LoginPage handles GET /auth/login. The portals are API-driven; the page
// itself just tells the frontend where to post credentials.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"login_endpoint": domain.LoginPath,
		"method":         http.MethodPost,
	})
}

// Unauthorized handles GET /auth/unauthorized, the gate's deny target.
func (h *AuthHandler) Unauthorized(c echo.Context) error {
	return c.JSON(http.StatusForbidden, ErrorResponse{
		Error: "you do not have access to this portal",
		Code:  domain.ErrCodeUnauthorized,
	})
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionToken := c.Request().Header.Get("X-Session-Token")
	if sessionToken == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session token is required"})
	}

	if err := h.authUsecase.Logout(c.Request().Context(), sessionToken); err != nil {
		h.logger.Error("logout failed", "error", err)
		return jsonError(c, err, "logout failed")
	}

	return c.NoContent(http.StatusNoContent)
}

// WhoAmI handles GET /api/auth/whoami
func (h *AuthHandler) WhoAmI(c echo.Context) error {
	sessionCtx, err := h.authUsecase.WhoAmI(c.Request().Context(), c.Request().Header.Get("Cookie"))
	if err != nil {
		return jsonError(c, err, "no active session")
	}

	return c.JSON(http.StatusOK, sessionCtx)
}

// RefreshSession handles POST /auth/refresh. A refresh failure surfaces as
// an error response; the caller's existing session stays usable until it
// actually expires.
func (h *AuthHandler) RefreshSession(c echo.Context) error {
	sessionToken := c.Request().Header.Get("X-Session-Token")
	if sessionToken == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session token is required"})
	}

	identity, err := h.authUsecase.RefreshSession(c.Request().Context(), sessionToken)
	if err != nil {
		h.logger.Warn("session refresh failed", "error", err)
		return jsonError(c, err, "session refresh failed")
	}

	return c.JSON(http.StatusOK, identity)
}
