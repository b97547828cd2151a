package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"portal-service/app/domain"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"session not found", domain.ErrSessionNotFound, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"duplicate user", domain.ErrUserAlreadyExists, http.StatusConflict},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"provider down", domain.ErrProviderUnavailable, http.StatusBadGateway},
		{"wrapped sentinel", fmt.Errorf("update user: %w", domain.ErrUserNotFound), http.StatusNotFound},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, domain.ErrCodeInvalidCredentials},
		{"session expired", domain.ErrSessionExpired, domain.ErrCodeSessionExpired},
		{"unauthorized", domain.ErrUnauthorized, domain.ErrCodeUnauthorized},
		{"forbidden", domain.ErrForbidden, domain.ErrCodeForbidden},
		{"workflow not found", domain.ErrWorkflowNotFound, domain.ErrCodeNotFound},
		{"conflict", domain.ErrConflict, domain.ErrCodeConflict},
		{"invalid input", domain.ErrInvalidInput, domain.ErrCodeInvalidInput},
		{"provider down", domain.ErrProviderUnavailable, domain.ErrCodeProviderUnavailable},
		{"unknown error", assert.AnError, domain.ErrCodeInternal},
		{
			name: "auth error carries its own code",
			err:  domain.NewAuthError(domain.ErrCodeInvalidCredentials, "credentials rejected", domain.ErrInvalidCredentials),
			want: domain.ErrCodeInvalidCredentials,
		},
		{
			name: "wrapped auth error",
			err:  fmt.Errorf("login: %w", domain.NewAuthError(domain.ErrCodeSessionExpired, "session gone", domain.ErrSessionExpired)),
			want: domain.ErrCodeSessionExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codeForError(tt.err))
		})
	}
}

func TestJSONError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/login", nil), rec)

	err := domain.NewAuthError(domain.ErrCodeInvalidCredentials,
		"credentials rejected by identity provider", domain.ErrInvalidCredentials)

	assert.NoError(t, jsonError(c, err, "login failed"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "login failed")
	assert.Contains(t, rec.Body.String(), domain.ErrCodeInvalidCredentials)
}
