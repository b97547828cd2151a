package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// UserUsecaseImpl implements port.UserUsecase
type UserUsecaseImpl struct {
	users     port.UserRepository
	companies port.CompanyRepository
	logger    *slog.Logger
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(users port.UserRepository, companies port.CompanyRepository, logger *slog.Logger) *UserUsecaseImpl {
	return &UserUsecaseImpl{
		users:     users,
		companies: companies,
		logger:    logger.With("component", "user_usecase"),
	}
}

// GetUser retrieves a user by ID
func (u *UserUsecaseImpl) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return u.users.FindByID(ctx, id)
}

// ListUsers retrieves users across all companies
func (u *UserUsecaseImpl) ListUsers(ctx context.Context, limit, offset int) ([]*domain.User, error) {
	return u.users.List(ctx, normalizeLimit(limit), normalizeOffset(offset))
}

// ListCompanyUsers retrieves users belonging to one company
func (u *UserUsecaseImpl) ListCompanyUsers(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.User, error) {
	return u.users.ListByCompany(ctx, companyID, normalizeLimit(limit), normalizeOffset(offset))
}

// CreateUser provisions a new local user keyed by the provider identity ID.
func (u *UserUsecaseImpl) CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if existing, err := u.users.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserAlreadyExists, req.Email)
	} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if req.CompanyID != nil {
		if _, err := u.companies.FindByID(ctx, *req.CompanyID); err != nil {
			return nil, err
		}
	}

	user, err := domain.NewUser(req.IdentityID, req.Email, req.Role, req.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	user.Name = req.Name

	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("user provisioned", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// ChangeUserRole changes a user's role
func (u *UserUsecaseImpl) ChangeUserRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.ChangeRole(role); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}

	u.logger.Info("user role changed", "user_id", id, "role", role)
	return user, nil
}

// AssignUserCompany binds a user to a company
func (u *UserUsecaseImpl) AssignUserCompany(ctx context.Context, id, companyID uuid.UUID) (*domain.User, error) {
	if _, err := u.companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.AssignCompany(companyID); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeactivateUser marks a user inactive
func (u *UserUsecaseImpl) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	if err := u.users.Deactivate(ctx, id); err != nil {
		return err
	}

	u.logger.Info("user deactivated", "user_id", id)
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 50
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
