package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// UserRole represents the role of a portal user
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleSE     UserRole = "se"
	UserRoleClient UserRole = "client"
)

// User represents the application's own user record. Its ID is expected to
// equal the identity provider's identity ID once synced; a mismatch is a
// sync-bug state that read paths tolerate by falling back to email lookups.
type User struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        UserRole   `json:"role"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// RoleAssignment is the single point read the request gate performs:
// just the role and company binding for an identity ID.
type RoleAssignment struct {
	UserID    uuid.UUID  `json:"user_id"`
	Role      UserRole   `json:"role"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

// CreateUserRequest carries the fields needed to provision a user
type CreateUserRequest struct {
	IdentityID uuid.UUID  `json:"identity_id"`
	Email      string     `json:"email"`
	Name       string     `json:"name,omitempty"`
	Role       UserRole   `json:"role"`
	CompanyID  *uuid.UUID `json:"company_id,omitempty"`
}

// NewUser creates a new user with validation
func NewUser(identityID uuid.UUID, email string, role UserRole, companyID *uuid.UUID) (*User, error) {
	if identityID == (uuid.UUID{}) {
		return nil, fmt.Errorf("identity ID is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	if !role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	if companyID != nil && *companyID == (uuid.UUID{}) {
		return nil, fmt.Errorf("company ID must not be the zero UUID")
	}

	now := time.Now()

	user := &User{
		ID:        identityID,
		Email:     email,
		Role:      role,
		CompanyID: companyID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return user, nil
}

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleSE, UserRoleClient:
		return true
	}
	return false
}

// ChangeRole changes the user's role with validation
func (u *User) ChangeRole(role UserRole) error {
	if !role.Valid() {
		return fmt.Errorf("invalid role: %s", role)
	}

	u.Role = role
	u.UpdatedAt = time.Now()
	return nil
}

// AssignCompany binds the user to a company.
func (u *User) AssignCompany(companyID uuid.UUID) error {
	if companyID == (uuid.UUID{}) {
		return fmt.Errorf("company ID is required")
	}

	u.CompanyID = &companyID
	u.UpdatedAt = time.Now()
	return nil
}

// Deactivate marks the user as inactive without deleting the row.
func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = time.Now()
}

// RecordLogin records the last login time
func (u *User) RecordLogin(loginTime time.Time) {
	u.LastLoginAt = &loginTime
	u.UpdatedAt = time.Now()
}
