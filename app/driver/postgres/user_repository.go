package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// UserRepository implements port.UserRepository for PostgreSQL
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

const userColumns = `id, email, name, role, company_id, is_active, created_at, updated_at, last_login_at`

// FindRoleAndCompany returns the role and company binding for an identity ID.
// This is the gate's hot path; it reads exactly one row and never joins.
func (r *UserRepository) FindRoleAndCompany(ctx context.Context, identityID uuid.UUID) (*domain.RoleAssignment, error) {
	query := `SELECT id, role, company_id FROM users WHERE id = $1 AND is_active = true`

	assignment := &domain.RoleAssignment{}
	err := r.db.QueryRow(ctx, query, identityID).Scan(
		&assignment.UserID,
		&assignment.Role,
		&assignment.CompanyID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to fetch role assignment", "identity_id", identityID, "error", err)
		return nil, fmt.Errorf("failed to fetch role assignment: %w", err)
	}

	return assignment, nil
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to get user by ID", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// List retrieves users ordered by creation time
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	return r.collectUsers(rows)
}

// ListByCompany retrieves users belonging to a company
func (r *UserRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		r.logger.Error("failed to list company users", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to list company users: %w", err)
	}
	defer rows.Close()

	return r.collectUsers(rows)
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			id, email, name, role, company_id, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Role,
		user.CompanyID,
		user.IsActive,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create user", "user_id", user.ID, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("user created", "user_id", user.ID, "role", user.Role)
	return nil
}

// Update persists mutable user fields
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users SET
			email = $2, name = $3, role = $4, company_id = $5, is_active = $6,
			updated_at = $7, last_login_at = $8
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Role,
		user.CompanyID,
		user.IsActive,
		user.UpdatedAt,
		user.LastLoginAt,
	)
	if err != nil {
		r.logger.Error("failed to update user", "user_id", user.ID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// UpdateID rewrites a user's primary key to match the identity provider's
// identity ID, keyed by email. Referencing rows follow via ON UPDATE CASCADE.
func (r *UserRepository) UpdateID(ctx context.Context, email string, newID uuid.UUID) (*domain.User, error) {
	query := `
		UPDATE users SET id = $2, updated_at = $3
		WHERE email = $1
		RETURNING ` + userColumns

	r.logger.Info("rewriting user primary key", "email", email, "new_id", newID)

	user, err := r.scanUser(r.db.QueryRow(ctx, query, email, newID, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to rewrite user ID", "email", email, "error", err)
		return nil, fmt.Errorf("failed to rewrite user ID: %w", err)
	}

	r.logger.Info("user primary key rewritten", "email", email, "user_id", user.ID)
	return user, nil
}

// Deactivate marks a user inactive
func (r *UserRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET is_active = false, updated_at = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		r.logger.Error("failed to deactivate user", "user_id", id, "error", err)
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	r.logger.Info("user deactivated", "user_id", id)
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.CompanyID,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) collectUsers(rows pgx.Rows) ([]*domain.User, error) {
	var users []*domain.User
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
