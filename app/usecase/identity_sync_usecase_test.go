package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"portal-service/app/domain"
	mock_port "portal-service/app/mocks"
)

func syncIdentity(id uuid.UUID, email string) *domain.Identity {
	return &domain.Identity{
		ID:           id,
		Email:        email,
		SessionID:    "session-" + email,
		SessionToken: "token-" + email,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func syncUser(id uuid.UUID, email string) *domain.User {
	return &domain.User{
		ID:       id,
		Email:    email,
		Role:     domain.UserRoleClient,
		IsActive: true,
	}
}

func TestIdentitySyncUsecase_Run(t *testing.T) {
	providerID := uuid.New()
	staleID := uuid.New()
	email := "client@example.com"
	account := SyncAccount{Email: email, Password: "secret"}

	tests := []struct {
		name       string
		setupMocks func(*mock_port.MockIdentityGateway, *mock_port.MockUserRepository)
		want       SyncResult
	}{
		{
			name: "stale primary key is rewritten",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().Authenticate(gomock.Any(), email, "secret").
					Return(syncIdentity(providerID, email), nil)
				users.EXPECT().FindByEmail(gomock.Any(), email).
					Return(syncUser(staleID, email), nil)
				users.EXPECT().UpdateID(gomock.Any(), email, providerID).
					Return(syncUser(providerID, email), nil)
				identity.EXPECT().SignOut(gomock.Any(), "token-"+email).Return(nil)
			},
			want: SyncResult{Total: 1, Rewritten: 1},
		},
		{
			name: "matching primary key is left alone",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().Authenticate(gomock.Any(), email, "secret").
					Return(syncIdentity(providerID, email), nil)
				users.EXPECT().FindByEmail(gomock.Any(), email).
					Return(syncUser(providerID, email), nil)
				identity.EXPECT().SignOut(gomock.Any(), "token-"+email).Return(nil)
			},
			want: SyncResult{Total: 1, InSync: 1},
		},
		{
			name: "authentication failure counts as failed, no sign-out attempted",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().Authenticate(gomock.Any(), email, "secret").
					Return(nil, domain.ErrInvalidCredentials)
			},
			want: SyncResult{Total: 1, Failed: 1},
		},
		{
			name: "missing local user counts as failed but still signs out",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().Authenticate(gomock.Any(), email, "secret").
					Return(syncIdentity(providerID, email), nil)
				users.EXPECT().FindByEmail(gomock.Any(), email).
					Return(nil, domain.ErrUserNotFound)
				identity.EXPECT().SignOut(gomock.Any(), "token-"+email).Return(nil)
			},
			want: SyncResult{Total: 1, Failed: 1},
		},
		{
			name: "rewrite failure counts as failed but still signs out",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().Authenticate(gomock.Any(), email, "secret").
					Return(syncIdentity(providerID, email), nil)
				users.EXPECT().FindByEmail(gomock.Any(), email).
					Return(syncUser(staleID, email), nil)
				users.EXPECT().UpdateID(gomock.Any(), email, providerID).
					Return(nil, assert.AnError)
				identity.EXPECT().SignOut(gomock.Any(), "token-"+email).Return(nil)
			},
			want: SyncResult{Total: 1, Failed: 1},
		},
		{
			name: "sign-out failure does not fail the account",
			setupMocks: func(identity *mock_port.MockIdentityGateway, users *mock_port.MockUserRepository) {
				identity.EXPECT().Authenticate(gomock.Any(), email, "secret").
					Return(syncIdentity(providerID, email), nil)
				users.EXPECT().FindByEmail(gomock.Any(), email).
					Return(syncUser(providerID, email), nil)
				identity.EXPECT().SignOut(gomock.Any(), "token-"+email).
					Return(domain.ErrProviderUnavailable)
			},
			want: SyncResult{Total: 1, InSync: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
			mockUsers := mock_port.NewMockUserRepository(ctrl)
			tt.setupMocks(mockIdentity, mockUsers)

			sync := NewIdentitySyncUsecase(mockIdentity, mockUsers, newTestLogger())

			result := sync.Run(context.Background(), []SyncAccount{account})

			assert.Equal(t, &tt.want, result)
		})
	}
}

func TestIdentitySyncUsecase_Run_ContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock_port.NewMockIdentityGateway(ctrl)
	mockUsers := mock_port.NewMockUserRepository(ctrl)

	brokenEmail := "broken@example.com"
	goodEmail := "good@example.com"
	providerID := uuid.New()

	// First account fails to authenticate, the second is still processed.
	mockIdentity.EXPECT().Authenticate(gomock.Any(), brokenEmail, "bad").
		Return(nil, domain.ErrInvalidCredentials)
	mockIdentity.EXPECT().Authenticate(gomock.Any(), goodEmail, "good").
		Return(syncIdentity(providerID, goodEmail), nil)
	mockUsers.EXPECT().FindByEmail(gomock.Any(), goodEmail).
		Return(syncUser(uuid.New(), goodEmail), nil)
	mockUsers.EXPECT().UpdateID(gomock.Any(), goodEmail, providerID).
		Return(syncUser(providerID, goodEmail), nil)
	mockIdentity.EXPECT().SignOut(gomock.Any(), "token-"+goodEmail).Return(nil)

	sync := NewIdentitySyncUsecase(mockIdentity, mockUsers, newTestLogger())

	result := sync.Run(context.Background(), []SyncAccount{
		{Email: brokenEmail, Password: "bad"},
		{Email: goodEmail, Password: "good"},
	})

	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Rewritten)
}

func TestIdentitySyncUsecase_Run_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sync := NewIdentitySyncUsecase(
		mock_port.NewMockIdentityGateway(ctrl),
		mock_port.NewMockUserRepository(ctrl),
		newTestLogger(),
	)

	result := sync.Run(context.Background(), nil)

	assert.Equal(t, &SyncResult{}, result)
}
