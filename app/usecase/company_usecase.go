package usecase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// CompanyUsecaseImpl implements port.CompanyUsecase
type CompanyUsecaseImpl struct {
	companies port.CompanyRepository
	logger    *slog.Logger
}

// NewCompanyUsecase creates a new company usecase
func NewCompanyUsecase(companies port.CompanyRepository, logger *slog.Logger) *CompanyUsecaseImpl {
	return &CompanyUsecaseImpl{
		companies: companies,
		logger:    logger.With("component", "company_usecase"),
	}
}

// GetCompany retrieves a company by ID
func (u *CompanyUsecaseImpl) GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	return u.companies.FindByID(ctx, id)
}

// ListCompanies retrieves all active companies
func (u *CompanyUsecaseImpl) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	return u.companies.List(ctx)
}

// CreateCompany creates a new company
func (u *CompanyUsecaseImpl) CreateCompany(ctx context.Context, name string) (*domain.Company, error) {
	company, err := domain.NewCompany(name)
	if err != nil {
		return nil, err
	}

	if err := u.companies.Create(ctx, company); err != nil {
		return nil, err
	}

	u.logger.Info("company created", "company_id", company.ID, "name", company.Name)
	return company, nil
}

// RenameCompany renames an existing company
func (u *CompanyUsecaseImpl) RenameCompany(ctx context.Context, id uuid.UUID, name string) (*domain.Company, error) {
	company, err := u.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := company.Rename(name); err != nil {
		return nil, err
	}

	if err := u.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// DeleteCompany soft deletes a company
func (u *CompanyUsecaseImpl) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	if err := u.companies.Delete(ctx, id); err != nil {
		return err
	}

	u.logger.Info("company deleted", "company_id", id)
	return nil
}
