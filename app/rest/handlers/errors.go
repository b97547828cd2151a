package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"portal-service/app/domain"
)

// ErrorResponse is the JSON error payload shared by all handlers
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// statusForError maps domain sentinel errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrSessionInactive),
		errors.Is(err, domain.ErrMissingIdentity),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrWorkflowNotFound),
		errors.Is(err, domain.ErrExecutionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProviderUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// codeForError picks the machine-readable code for the error payload. An
// AuthError carries its own code; sentinels map onto the shared code set.
func codeForError(err error) string {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		return authErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return domain.ErrCodeInvalidCredentials
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrSessionInactive),
		errors.Is(err, domain.ErrMissingIdentity):
		return domain.ErrCodeSessionExpired
	case errors.Is(err, domain.ErrUnauthorized):
		return domain.ErrCodeUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return domain.ErrCodeForbidden
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrWorkflowNotFound),
		errors.Is(err, domain.ErrExecutionNotFound):
		return domain.ErrCodeNotFound
	case errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrConflict):
		return domain.ErrCodeConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return domain.ErrCodeInvalidInput
	case errors.Is(err, domain.ErrProviderUnavailable):
		return domain.ErrCodeProviderUnavailable
	default:
		return domain.ErrCodeInternal
	}
}

// jsonError writes the shared error payload for a failed operation.
func jsonError(c echo.Context, err error, message string) error {
	return c.JSON(statusForError(err), ErrorResponse{Error: message, Code: codeForError(err)})
}
