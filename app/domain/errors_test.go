package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"portal-service/app/domain"
)

func TestAuthError_Error(t *testing.T) {
	withCause := domain.NewAuthError(domain.ErrCodeInvalidCredentials, "credentials rejected", domain.ErrInvalidCredentials)
	assert.Equal(t, "credentials rejected: invalid credentials", withCause.Error())

	withoutCause := domain.NewAuthError(domain.ErrCodeInternal, "something broke", nil)
	assert.Equal(t, "something broke", withoutCause.Error())
}

func TestAuthError_UnwrapsToSentinel(t *testing.T) {
	err := domain.NewAuthError(domain.ErrCodeInvalidCredentials, "credentials rejected", domain.ErrInvalidCredentials)

	// Callers matching on the sentinel must not notice the wrapper.
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))

	var authErr *domain.AuthError
	assert.True(t, errors.As(err, &authErr))
	assert.Equal(t, domain.ErrCodeInvalidCredentials, authErr.Code)
}
