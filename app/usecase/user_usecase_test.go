package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"portal-service/app/domain"
	mock_port "portal-service/app/mocks"
)

func TestUserUsecase_CreateUser(t *testing.T) {
	identityID := uuid.New()
	companyID := uuid.New()

	tests := []struct {
		name       string
		req        *domain.CreateUserRequest
		setupMocks func(*mock_port.MockUserRepository, *mock_port.MockCompanyRepository)
		expectErr  error
	}{
		{
			name: "provisions client bound to company",
			req: &domain.CreateUserRequest{
				IdentityID: identityID,
				Email:      "client@example.com",
				Name:       "Client User",
				Role:       domain.UserRoleClient,
				CompanyID:  &companyID,
			},
			setupMocks: func(users *mock_port.MockUserRepository, companies *mock_port.MockCompanyRepository) {
				users.EXPECT().FindByEmail(gomock.Any(), "client@example.com").
					Return(nil, domain.ErrUserNotFound)
				companies.EXPECT().FindByID(gomock.Any(), companyID).
					Return(&domain.Company{ID: companyID, Name: "Acme"}, nil)
				users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "rejects duplicate email",
			req: &domain.CreateUserRequest{
				IdentityID: identityID,
				Email:      "dup@example.com",
				Role:       domain.UserRoleAdmin,
			},
			setupMocks: func(users *mock_port.MockUserRepository, companies *mock_port.MockCompanyRepository) {
				users.EXPECT().FindByEmail(gomock.Any(), "dup@example.com").
					Return(&domain.User{ID: uuid.New(), Email: "dup@example.com"}, nil)
			},
			expectErr: domain.ErrUserAlreadyExists,
		},
		{
			name: "rejects unknown company",
			req: &domain.CreateUserRequest{
				IdentityID: identityID,
				Email:      "client@example.com",
				Role:       domain.UserRoleClient,
				CompanyID:  &companyID,
			},
			setupMocks: func(users *mock_port.MockUserRepository, companies *mock_port.MockCompanyRepository) {
				users.EXPECT().FindByEmail(gomock.Any(), "client@example.com").
					Return(nil, domain.ErrUserNotFound)
				companies.EXPECT().FindByID(gomock.Any(), companyID).
					Return(nil, domain.ErrCompanyNotFound)
			},
			expectErr: domain.ErrCompanyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUsers := mock_port.NewMockUserRepository(ctrl)
			mockCompanies := mock_port.NewMockCompanyRepository(ctrl)
			tt.setupMocks(mockUsers, mockCompanies)

			uc := NewUserUsecase(mockUsers, mockCompanies, newTestLogger())

			user, err := uc.CreateUser(context.Background(), tt.req)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.IdentityID, user.ID)
			assert.Equal(t, tt.req.Role, user.Role)
		})
	}
}

func TestUserUsecase_ChangeUserRole(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock_port.NewMockUserRepository(ctrl)
	mockCompanies := mock_port.NewMockCompanyRepository(ctrl)
	mockUsers.EXPECT().FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, Email: "ops@example.com", Role: domain.UserRoleSE, IsActive: true}, nil)
	mockUsers.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewUserUsecase(mockUsers, mockCompanies, newTestLogger())

	user, err := uc.ChangeUserRole(context.Background(), userID, domain.UserRoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, domain.UserRoleAdmin, user.Role)
}

func TestUserUsecase_ListUsers_NormalizesPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mock_port.NewMockUserRepository(ctrl)
	mockCompanies := mock_port.NewMockCompanyRepository(ctrl)
	// Out-of-range paging falls back to defaults before hitting the store.
	mockUsers.EXPECT().List(gomock.Any(), 50, 0).Return([]*domain.User{}, nil)

	uc := NewUserUsecase(mockUsers, mockCompanies, newTestLogger())

	_, err := uc.ListUsers(context.Background(), -5, -1)

	assert.NoError(t, err)
}
