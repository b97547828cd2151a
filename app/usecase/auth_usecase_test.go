package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"portal-service/app/domain"
	mock_port "portal-service/app/mocks"
)

func TestAuthUsecase_Login(t *testing.T) {
	identityID := uuid.New()
	email := "ops@example.com"

	tests := []struct {
		name           string
		setupMocks     func(*mock_port.MockIdentityGateway, *mock_port.MockUserRepository)
		expectErr      error
		wantAssignment bool
	}{
		{
			name: "successful login with role assignment",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().Authenticate(gomock.Any(), email, "secret").
					Return(testIdentity(identityID), nil)
				users.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
					Return(&domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleAdmin}, nil)
				users.EXPECT().FindByID(gomock.Any(), identityID).
					Return(&domain.User{ID: identityID, Email: email, Role: domain.UserRoleAdmin, IsActive: true}, nil)
				users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantAssignment: true,
		},
		{
			name: "invalid credentials",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().Authenticate(gomock.Any(), email, "secret").
					Return(nil, domain.ErrInvalidCredentials)
			},
			expectErr: domain.ErrInvalidCredentials,
		},
		{
			name: "login succeeds without local user row",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().Authenticate(gomock.Any(), email, "secret").
					Return(testIdentity(identityID), nil)
				users.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
					Return(nil, domain.ErrUserNotFound)
			},
			wantAssignment: false,
		},
		{
			name: "last-login write failure does not block login",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().Authenticate(gomock.Any(), email, "secret").
					Return(testIdentity(identityID), nil)
				users.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
					Return(&domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleAdmin}, nil)
				users.EXPECT().FindByID(gomock.Any(), identityID).
					Return(&domain.User{ID: identityID, Email: email, Role: domain.UserRoleAdmin, IsActive: true}, nil)
				users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			wantAssignment: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
			mockUsers := mock_port.NewMockUserRepository(ctrl)
			tt.setupMocks(mockIdentity, mockUsers)

			auth := NewAuthUsecase(mockIdentity, mockUsers, newTestLogger())

			sessionCtx, err := auth.Login(context.Background(), email, "secret")

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, sessionCtx)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, sessionCtx)
			assert.Equal(t, identityID, sessionCtx.Identity.ID)
			if tt.wantAssignment {
				assert.NotNil(t, sessionCtx.Assignment)
			} else {
				assert.Nil(t, sessionCtx.Assignment)
			}
		})
	}
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
	mockUsers := mock_port.NewMockUserRepository(ctrl)
	mockIdentity.EXPECT().SignOut(gomock.Any(), "token-abc").Return(nil)

	auth := NewAuthUsecase(mockIdentity, mockUsers, newTestLogger())

	assert.NoError(t, auth.Logout(context.Background(), "token-abc"))
}

func TestAuthUsecase_WhoAmI(t *testing.T) {
	identityID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
	mockUsers := mock_port.NewMockUserRepository(ctrl)
	mockIdentity.EXPECT().ResolveSession(gomock.Any(), "cookie").
		Return(testIdentity(identityID), nil)
	mockUsers.EXPECT().FindRoleAndCompany(gomock.Any(), identityID).
		Return(&domain.RoleAssignment{UserID: identityID, Role: domain.UserRoleSE}, nil)

	auth := NewAuthUsecase(mockIdentity, mockUsers, newTestLogger())

	sessionCtx, err := auth.WhoAmI(context.Background(), "cookie")

	assert.NoError(t, err)
	assert.Equal(t, identityID, sessionCtx.Identity.ID)
	assert.Equal(t, domain.UserRoleSE, sessionCtx.Assignment.Role)
}

func TestAuthUsecase_WhoAmI_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
	mockUsers := mock_port.NewMockUserRepository(ctrl)
	mockIdentity.EXPECT().ResolveSession(gomock.Any(), "").
		Return(nil, domain.ErrSessionNotFound)

	auth := NewAuthUsecase(mockIdentity, mockUsers, newTestLogger())

	sessionCtx, err := auth.WhoAmI(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Nil(t, sessionCtx)
}

func TestAuthUsecase_RefreshSession(t *testing.T) {
	identityID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
	mockUsers := mock_port.NewMockUserRepository(ctrl)
	mockIdentity.EXPECT().RefreshSession(gomock.Any(), "token-abc").
		Return(testIdentity(identityID), nil)

	auth := NewAuthUsecase(mockIdentity, mockUsers, newTestLogger())

	identity, err := auth.RefreshSession(context.Background(), "token-abc")

	assert.NoError(t, err)
	assert.Equal(t, identityID, identity.ID)
}
