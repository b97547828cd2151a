package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Company represents a tenant organization client users belong to
type Company struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// NewCompany creates a new company with validation
func NewCompany(name string) (*Company, error) {
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}

	if len(name) > 255 {
		return nil, fmt.Errorf("company name too long: %d characters", len(name))
	}

	now := time.Now()

	return &Company{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename changes the company name with validation
func (c *Company) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("company name is required")
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}

// SoftDelete marks the company as deleted
func (c *Company) SoftDelete() {
	now := time.Now()
	c.DeletedAt = &now
	c.UpdatedAt = now
}

// IsDeleted returns true if the company is soft deleted
func (c *Company) IsDeleted() bool {
	return c.DeletedAt != nil
}
