package port

//go:generate mockgen -source=company_port.go -destination=../mocks/mock_company_port.go

import (
	"context"

	"github.com/google/uuid"

	"portal-service/app/domain"
)

// CompanyRepository defines company data access
type CompanyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyUsecase defines company management business logic
type CompanyUsecase interface {
	GetCompany(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
	CreateCompany(ctx context.Context, name string) (*domain.Company, error)
	RenameCompany(ctx context.Context, id uuid.UUID, name string) (*domain.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
}
