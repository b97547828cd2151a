package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExecutionStatus represents the lifecycle state of a workflow execution
type ExecutionStatus string

const (
	ExecutionStatusQueued    ExecutionStatus = "queued"
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusSucceeded ExecutionStatus = "succeeded"
	ExecutionStatusFailed    ExecutionStatus = "failed"
)

// Workflow represents an automation workflow owned by a company
type Workflow struct {
	ID         uuid.UUID       `json:"id"`
	CompanyID  uuid.UUID       `json:"company_id"`
	OwnerID    uuid.UUID       `json:"owner_id"`
	Name       string          `json:"name"`
	Definition json.RawMessage `json:"definition"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	ArchivedAt *time.Time      `json:"archived_at,omitempty"`
}

// WorkflowExecution represents a single run of a workflow
type WorkflowExecution struct {
	ID          uuid.UUID       `json:"id"`
	WorkflowID  uuid.UUID       `json:"workflow_id"`
	TriggeredBy uuid.UUID       `json:"triggered_by"`
	Status      ExecutionStatus `json:"status"`
	Result      json.RawMessage `json:"result,omitempty"`
	StartedAt   time.Time       `json:"started_at"`
	FinishedAt  *time.Time      `json:"finished_at,omitempty"`
}

// NewWorkflow creates a new workflow with validation
func NewWorkflow(companyID, ownerID uuid.UUID, name string, definition json.RawMessage) (*Workflow, error) {
	if companyID == (uuid.UUID{}) {
		return nil, fmt.Errorf("company ID is required")
	}

	if ownerID == (uuid.UUID{}) {
		return nil, fmt.Errorf("owner ID is required")
	}

	if name == "" {
		return nil, fmt.Errorf("workflow name is required")
	}

	if len(definition) > 0 && !json.Valid(definition) {
		return nil, fmt.Errorf("workflow definition is not valid JSON")
	}

	if len(definition) == 0 {
		definition = json.RawMessage(`{}`)
	}

	now := time.Now()

	return &Workflow{
		ID:         uuid.New(),
		CompanyID:  companyID,
		OwnerID:    ownerID,
		Name:       name,
		Definition: definition,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Update replaces the workflow's name and definition
func (w *Workflow) Update(name string, definition json.RawMessage) error {
	if name == "" {
		return fmt.Errorf("workflow name is required")
	}

	if len(definition) > 0 && !json.Valid(definition) {
		return fmt.Errorf("workflow definition is not valid JSON")
	}

	w.Name = name
	if len(definition) > 0 {
		w.Definition = definition
	}
	w.UpdatedAt = time.Now()
	return nil
}

// Archive deactivates the workflow and records the archival time
func (w *Workflow) Archive() {
	now := time.Now()
	w.IsActive = false
	w.ArchivedAt = &now
	w.UpdatedAt = now
}

// NewExecution creates a queued execution for the workflow
func (w *Workflow) NewExecution(triggeredBy uuid.UUID) (*WorkflowExecution, error) {
	if !w.IsActive {
		return nil, fmt.Errorf("workflow %s is not active", w.ID)
	}

	if triggeredBy == (uuid.UUID{}) {
		return nil, fmt.Errorf("triggering user ID is required")
	}

	return &WorkflowExecution{
		ID:          uuid.New(),
		WorkflowID:  w.ID,
		TriggeredBy: triggeredBy,
		Status:      ExecutionStatusQueued,
		StartedAt:   time.Now(),
	}, nil
}

// Valid reports whether the status is one of the known execution states.
func (s ExecutionStatus) Valid() bool {
	switch s {
	case ExecutionStatusQueued, ExecutionStatusRunning, ExecutionStatusSucceeded, ExecutionStatusFailed:
		return true
	}
	return false
}

// Terminal reports whether the status is a final state.
func (s ExecutionStatus) Terminal() bool {
	return s == ExecutionStatusSucceeded || s == ExecutionStatusFailed
}

// Transition moves the execution to a new status with validation
func (e *WorkflowExecution) Transition(status ExecutionStatus, result json.RawMessage) error {
	if !status.Valid() {
		return fmt.Errorf("invalid execution status: %s", status)
	}

	if e.Status.Terminal() {
		return fmt.Errorf("execution %s already finished with status %s", e.ID, e.Status)
	}

	if len(result) > 0 && !json.Valid(result) {
		return fmt.Errorf("execution result is not valid JSON")
	}

	e.Status = status
	if len(result) > 0 {
		e.Result = result
	}

	if status.Terminal() {
		now := time.Now()
		e.FinishedAt = &now
	}

	return nil
}
