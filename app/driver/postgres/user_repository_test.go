package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-service/app/domain"
	"portal-service/app/utils/logger"
)

func createTestUserRepository(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewUserRepository(mockDB, testLogger).(*UserRepository)

	return repo, mockDB
}

func TestUserRepository_FindRoleAndCompany(t *testing.T) {
	identityID := uuid.New()
	companyID := uuid.New()

	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		want    *domain.RoleAssignment
		wantErr error
	}{
		{
			name: "client user with company",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT id, role, company_id FROM users").
					WithArgs(identityID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "role", "company_id"}).
						AddRow(identityID, domain.UserRoleClient, &companyID))
			},
			want: &domain.RoleAssignment{
				UserID:    identityID,
				Role:      domain.UserRoleClient,
				CompanyID: &companyID,
			},
		},
		{
			name: "admin user without company",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT id, role, company_id FROM users").
					WithArgs(identityID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "role", "company_id"}).
						AddRow(identityID, domain.UserRoleAdmin, (*uuid.UUID)(nil)))
			},
			want: &domain.RoleAssignment{
				UserID: identityID,
				Role:   domain.UserRoleAdmin,
			},
		},
		{
			name: "no row for identity",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT id, role, company_id FROM users").
					WithArgs(identityID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "database error",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT id, role, company_id FROM users").
					WithArgs(identityID).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: pgx.ErrTxClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			got, err := repo.FindRoleAndCompany(context.Background(), identityID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	userID := uuid.New()
	now := time.Now()

	mockDB.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ops@example.com").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "email", "name", "role", "company_id", "is_active",
			"created_at", "updated_at", "last_login_at",
		}).AddRow(userID, "ops@example.com", "Ops", domain.UserRoleAdmin, (*uuid.UUID)(nil), true, now, now, (*time.Time)(nil)))

	user, err := repo.FindByEmail(context.Background(), "ops@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, domain.UserRoleAdmin, user.Role)
	assert.True(t, user.IsActive)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("missing@example.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_Create(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	user, err := domain.NewUser(uuid.New(), "ops@example.com", domain.UserRoleSE, nil)
	require.NoError(t, err)

	mockDB.ExpectExec("INSERT INTO users").
		WithArgs(
			user.ID,
			user.Email,
			user.Name,
			user.Role,
			user.CompanyID,
			user.IsActive,
			user.CreatedAt,
			user.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_UpdateID(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	newID := uuid.New()
	now := time.Now()

	mockDB.ExpectQuery("UPDATE users SET id").
		WithArgs("client@example.com", newID, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "email", "name", "role", "company_id", "is_active",
			"created_at", "updated_at", "last_login_at",
		}).AddRow(newID, "client@example.com", "", domain.UserRoleClient, (*uuid.UUID)(nil), true, now, now, (*time.Time)(nil)))

	user, err := repo.UpdateID(context.Background(), "client@example.com", newID)
	require.NoError(t, err)
	assert.Equal(t, newID, user.ID)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_UpdateID_NotFound(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	newID := uuid.New()

	mockDB.ExpectQuery("UPDATE users SET id").
		WithArgs("missing@example.com", newID, pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.UpdateID(context.Background(), "missing@example.com", newID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserRepository_Deactivate(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	userID := uuid.New()

	mockDB.ExpectExec("UPDATE users SET is_active = false").
		WithArgs(userID, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.Deactivate(context.Background(), userID))

	mockDB.ExpectExec("UPDATE users SET is_active = false").
		WithArgs(userID, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Deactivate(context.Background(), userID), domain.ErrUserNotFound)
}
