package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"portal-service/app/domain"
	mock_port "portal-service/app/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testIdentity(id uuid.UUID) *domain.Identity {
	return &domain.Identity{
		ID:        id,
		Email:     "user@example.com",
		SessionID: "session-123",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestGateUsecase_Evaluate_AdminPortal(t *testing.T) {
	identityID := uuid.New()
	companyID := uuid.New()

	tests := []struct {
		name         string
		path         string
		setupMocks   func(*mock_port.MockIdentityGateway, *mock_port.MockUserRepository)
		wantDecision domain.GateDecision
		wantSession  bool
	}{
		{
			name: "allow-listed auth path passes without session check",
			path: "/auth/login",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				// no external calls expected
			},
			wantDecision: domain.GatePass,
			wantSession:  false,
		},
		{
			name: "allow-listed api path passes even with no cookie",
			path: "/api/health",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
			},
			wantDecision: domain.GatePass,
			wantSession:  false,
		},
		{
			name: "no session redirects to login",
			path: "/dashboard",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrSessionNotFound)
			},
			wantDecision: domain.GateRedirectLogin,
			wantSession:  false,
		},
		{
			name: "expired session redirects to login",
			path: "/dashboard",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrSessionExpired)
			},
			wantDecision: domain.GateRedirectLogin,
			wantSession:  false,
		},
		{
			name: "provider outage fails closed to unauthorized",
			path: "/dashboard",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrProviderUnavailable)
			},
			wantDecision: domain.GateRedirectUnauthorized,
			wantSession:  false,
		},
		{
			name: "admin role passes",
			path: "/dashboard",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
					Return(testIdentity(identityID), nil)
				users.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
					Return(&domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleAdmin}, nil)
			},
			wantDecision: domain.GatePass,
			wantSession:  true,
		},
		{
			name: "se role passes",
			path: "/dashboard",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
					Return(testIdentity(identityID), nil)
				users.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
					Return(&domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleSE}, nil)
			},
			wantDecision: domain.GatePass,
			wantSession:  true,
		},
		{
			name: "client role denied on admin portal",
			path: "/dashboard",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
					Return(testIdentity(identityID), nil)
				users.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
					Return(&domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleClient, CompanyID: &companyID}, nil)
			},
			wantDecision: domain.GateRedirectUnauthorized,
			wantSession:  false,
		},
		{
			name: "valid session without local user row redirects to unauthorized",
			path: "/dashboard",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
					Return(testIdentity(identityID), nil)
				users.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
					Return(nil, domain.ErrUserNotFound)
			},
			wantDecision: domain.GateRedirectUnauthorized,
			wantSession:  false,
		},
		{
			name: "role lookup failure fails closed",
			path: "/dashboard",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
					Return(testIdentity(identityID), nil)
				users.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
					Return(nil, assert.AnError)
			},
			wantDecision: domain.GateRedirectUnauthorized,
			wantSession:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
			mockUsers := mock_port.NewMockUserRepository(ctrl)
			tt.setupMocks(mockIdentity, mockUsers)

			gate := NewGateUsecase(domain.PortalAdmin, mockIdentity, mockUsers, newTestLogger())

			decision, session := gate.Evaluate(context.Background(), tt.path, "ory_kratos_session=abc")

			assert.Equal(t, tt.wantDecision, decision)
			if tt.wantSession {
				assert.NotNil(t, session)
				assert.Equal(t, identityID, session.Identity.ID)
			} else {
				assert.Nil(t, session)
			}
		})
	}
}

func TestGateUsecase_Evaluate_ClientPortal(t *testing.T) {
	identityID := uuid.New()
	companyID := uuid.New()

	tests := []struct {
		name         string
		assignment   *domain.RoleAssignment
		wantDecision domain.GateDecision
	}{
		{
			name:         "client with company passes",
			assignment:   &domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleClient, CompanyID: &companyID},
			wantDecision: domain.GatePass,
		},
		{
			name:         "client without company denied",
			assignment:   &domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleClient},
			wantDecision: domain.GateRedirectUnauthorized,
		},
		{
			name:         "admin denied on client portal",
			assignment:   &domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleAdmin},
			wantDecision: domain.GateRedirectUnauthorized,
		},
		{
			name:         "se denied on client portal",
			assignment:   &domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleSE},
			wantDecision: domain.GateRedirectUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
			mockUsers := mock_port.NewMockUserRepository(ctrl)
			mockIdentity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
				Return(testIdentity(identityID), nil)
			mockUsers.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
				Return(tt.assignment, nil)

			gate := NewGateUsecase(domain.PortalClient, mockIdentity, mockUsers, newTestLogger())

			decision, _ := gate.Evaluate(context.Background(), "/workflows", "ory_kratos_session=abc")

			assert.Equal(t, tt.wantDecision, decision)
		})
	}
}

func TestGateUsecase_Evaluate_ClientPortalAllowList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
	mockUsers := mock_port.NewMockUserRepository(ctrl)

	gate := NewGateUsecase(domain.PortalClient, mockIdentity, mockUsers, newTestLogger())

	// /api/auth/ is allow-listed on the client portal, bare /api/ is not.
	decision, _ := gate.Evaluate(context.Background(), "/api/auth/callback", "")
	assert.Equal(t, domain.GatePass, decision)

	mockIdentity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrSessionNotFound)
	decision, _ = gate.Evaluate(context.Background(), "/api/reports", "")
	assert.Equal(t, domain.GateRedirectLogin, decision)
}

func TestGateUsecase_Evaluate_Idempotent(t *testing.T) {
	identityID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
	mockUsers := mock_port.NewMockUserRepository(ctrl)
	mockIdentity.EXPECT().ResolveSession(gomock.Any(), gomock.Any()).
		Return(testIdentity(identityID), nil).Times(2)
	mockUsers.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
		Return(&domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleAdmin}, nil).Times(2)

	gate := NewGateUsecase(domain.PortalAdmin, mockIdentity, mockUsers, newTestLogger())

	first, _ := gate.Evaluate(context.Background(), "/dashboard", "ory_kratos_session=abc")
	second, _ := gate.Evaluate(context.Background(), "/dashboard", "ory_kratos_session=abc")

	assert.Equal(t, first, second)
	assert.Equal(t, domain.GatePass, first)
}
