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

// CompanyRepository implements port.CompanyRepository for PostgreSQL
type CompanyRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewCompanyRepository creates a new PostgreSQL company repository
func NewCompanyRepository(db DatabaseIface, logger *slog.Logger) port.CompanyRepository {
	return &CompanyRepository{
		db:     db,
		logger: logger.With("component", "company_repository"),
	}
}

// FindByID retrieves a company by ID
func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	query := `
		SELECT id, name, created_at, updated_at, deleted_at
		FROM companies WHERE id = $1 AND deleted_at IS NULL`

	var company domain.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.CreatedAt,
		&company.UpdatedAt,
		&company.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		r.logger.Error("failed to get company", "company_id", id, "error", err)
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &company, nil
}

// List retrieves all active companies
func (r *CompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	query := `
		SELECT id, name, created_at, updated_at, deleted_at
		FROM companies WHERE deleted_at IS NULL ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list companies", "error", err)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		var company domain.Company
		err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.CreatedAt,
			&company.UpdatedAt,
			&company.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}

	return companies, nil
}

// Create inserts a new company
func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query,
		company.ID,
		company.Name,
		company.CreatedAt,
		company.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create company", "company_id", company.ID, "error", err)
		return fmt.Errorf("failed to create company: %w", err)
	}

	r.logger.Info("company created", "company_id", company.ID, "name", company.Name)
	return nil
}

// Update persists company changes
func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	query := `
		UPDATE companies SET name = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query,
		company.ID,
		company.Name,
		company.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to update company", "company_id", company.ID, "error", err)
		return fmt.Errorf("failed to update company: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrCompanyNotFound
	}

	return nil
}

// Delete soft deletes a company
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE companies SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		r.logger.Error("failed to delete company", "company_id", id, "error", err)
		return fmt.Errorf("failed to delete company: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrCompanyNotFound
	}

	r.logger.Info("company deleted", "company_id", id)
	return nil
}
