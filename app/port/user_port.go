package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go

import (
	"context"

	"github.com/google/uuid"

	"portal-service/app/domain"
)

// UserRepository defines user data access
type UserRepository interface {
	// FindRoleAndCompany is the gate's single point read: role and company
	// binding for an identity ID. Returns domain.ErrUserNotFound when no
	// row exists for the identity.
	FindRoleAndCompany(ctx context.Context, identityID uuid.UUID) (*domain.RoleAssignment, error)

	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error

	// UpdateID rewrites a user's primary key to match the identity
	// provider's identity ID, keyed by email. The schema cascades the
	// rewrite to referencing rows.
	UpdateID(ctx context.Context, email string, newID uuid.UUID) (*domain.User, error)

	Deactivate(ctx context.Context, id uuid.UUID) error
}

// UserUsecase defines user management business logic
type UserUsecase interface {
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, error)
	ListCompanyUsers(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.User, error)
	CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	ChangeUserRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	AssignUserCompany(ctx context.Context, id, companyID uuid.UUID) (*domain.User, error)
	DeactivateUser(ctx context.Context, id uuid.UUID) error
}
