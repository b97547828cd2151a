package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"portal-service/app/domain"
)

func TestDecide(t *testing.T) {
	companyID := uuid.New()

	tests := []struct {
		name      string
		portal    domain.Portal
		role      domain.UserRole
		companyID *uuid.UUID
		want      domain.PolicyDecision
	}{
		{
			name:   "admin role on admin portal",
			portal: domain.PortalAdmin,
			role:   domain.UserRoleAdmin,
			want:   domain.PolicyAllow,
		},
		{
			name:   "se role on admin portal",
			portal: domain.PortalAdmin,
			role:   domain.UserRoleSE,
			want:   domain.PolicyAllow,
		},
		{
			name:      "client role on admin portal",
			portal:    domain.PortalAdmin,
			role:      domain.UserRoleClient,
			companyID: &companyID,
			want:      domain.PolicyDeny,
		},
		{
			name:      "client with company on client portal",
			portal:    domain.PortalClient,
			role:      domain.UserRoleClient,
			companyID: &companyID,
			want:      domain.PolicyAllow,
		},
		{
			name:   "client without company on client portal",
			portal: domain.PortalClient,
			role:   domain.UserRoleClient,
			want:   domain.PolicyDeny,
		},
		{
			name:   "admin role on client portal",
			portal: domain.PortalClient,
			role:   domain.UserRoleAdmin,
			want:   domain.PolicyDeny,
		},
		{
			name:      "se role on client portal",
			portal:    domain.PortalClient,
			role:      domain.UserRoleSE,
			companyID: &companyID,
			want:      domain.PolicyDeny,
		},
		{
			name:   "unknown role on admin portal",
			portal: domain.PortalAdmin,
			role:   domain.UserRole("superuser"),
			want:   domain.PolicyDeny,
		},
		{
			name:      "unknown portal",
			portal:    domain.Portal("partner"),
			role:      domain.UserRoleAdmin,
			companyID: &companyID,
			want:      domain.PolicyDeny,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Decide(tt.portal, tt.role, tt.companyID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecide_Deterministic(t *testing.T) {
	companyID := uuid.New()

	first := domain.Decide(domain.PortalClient, domain.UserRoleClient, &companyID)
	second := domain.Decide(domain.PortalClient, domain.UserRoleClient, &companyID)

	assert.Equal(t, first, second)
}

func TestPortal_AllowListPrefixes(t *testing.T) {
	assert.Equal(t, []string{"/auth/", "/api/"}, domain.PortalAdmin.AllowListPrefixes())
	assert.Equal(t, []string{"/auth/", "/api/auth/"}, domain.PortalClient.AllowListPrefixes())
	assert.Nil(t, domain.Portal("partner").AllowListPrefixes())
}
