package domain

import "errors"

// Authentication and session errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrSessionInactive    = errors.New("session inactive")
	ErrMissingIdentity    = errors.New("session has no identity")

	// Provider errors
	ErrProviderUnavailable = errors.New("identity provider unavailable")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Record errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrWorkflowNotFound  = errors.New("workflow not found")
	ErrExecutionNotFound = errors.New("execution not found")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// General errors
	ErrInternal = errors.New("internal error")
	ErrConflict = errors.New("resource conflict")
)

// AuthError represents authentication-related errors with additional context
type AuthError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new authentication error
func NewAuthError(code, message string, cause error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Machine-readable codes carried in error payloads
const (
	ErrCodeInvalidCredentials  = "INVALID_CREDENTIALS"
	ErrCodeSessionExpired      = "SESSION_EXPIRED"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	ErrCodeInternal            = "INTERNAL_ERROR"
)
