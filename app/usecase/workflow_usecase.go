package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// WorkflowUsecaseImpl implements port.WorkflowUsecase
type WorkflowUsecaseImpl struct {
	workflows port.WorkflowRepository
	companies port.CompanyRepository
	logger    *slog.Logger
}

// NewWorkflowUsecase creates a new workflow usecase
func NewWorkflowUsecase(workflows port.WorkflowRepository, companies port.CompanyRepository, logger *slog.Logger) *WorkflowUsecaseImpl {
	return &WorkflowUsecaseImpl{
		workflows: workflows,
		companies: companies,
		logger:    logger.With("component", "workflow_usecase"),
	}
}

// GetWorkflow retrieves a workflow by ID
func (u *WorkflowUsecaseImpl) GetWorkflow(ctx context.Context, id uuid.UUID) (*domain.Workflow, error) {
	return u.workflows.FindByID(ctx, id)
}

// ListWorkflows retrieves workflows owned by a company
func (u *WorkflowUsecaseImpl) ListWorkflows(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.Workflow, error) {
	return u.workflows.ListByCompany(ctx, companyID, normalizeLimit(limit), normalizeOffset(offset))
}

// CreateWorkflow creates a new workflow for a company
func (u *WorkflowUsecaseImpl) CreateWorkflow(ctx context.Context, companyID, ownerID uuid.UUID, name string, definition json.RawMessage) (*domain.Workflow, error) {
	if _, err := u.companies.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	workflow, err := domain.NewWorkflow(companyID, ownerID, name, definition)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := u.workflows.Create(ctx, workflow); err != nil {
		return nil, err
	}

	u.logger.Info("workflow created",
		"workflow_id", workflow.ID,
		"company_id", companyID)
	return workflow, nil
}

// UpdateWorkflow updates a workflow's name and definition
func (u *WorkflowUsecaseImpl) UpdateWorkflow(ctx context.Context, id uuid.UUID, name string, definition json.RawMessage) (*domain.Workflow, error) {
	workflow, err := u.workflows.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := workflow.Update(name, definition); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := u.workflows.Update(ctx, workflow); err != nil {
		return nil, err
	}

	return workflow, nil
}

// ArchiveWorkflow deactivates a workflow
func (u *WorkflowUsecaseImpl) ArchiveWorkflow(ctx context.Context, id uuid.UUID) error {
	workflow, err := u.workflows.FindByID(ctx, id)
	if err != nil {
		return err
	}

	workflow.Archive()

	if err := u.workflows.Update(ctx, workflow); err != nil {
		return err
	}

	u.logger.Info("workflow archived", "workflow_id", id)
	return nil
}

// GetExecution retrieves an execution by ID
func (u *WorkflowUsecaseImpl) GetExecution(ctx context.Context, id uuid.UUID) (*domain.WorkflowExecution, error) {
	return u.workflows.FindExecutionByID(ctx, id)
}

// ListExecutions retrieves executions of a workflow
func (u *WorkflowUsecaseImpl) ListExecutions(ctx context.Context, workflowID uuid.UUID, limit, offset int) ([]*domain.WorkflowExecution, error) {
	return u.workflows.ListExecutions(ctx, workflowID, normalizeLimit(limit), normalizeOffset(offset))
}

// TriggerExecution records a new queued execution of an active workflow
func (u *WorkflowUsecaseImpl) TriggerExecution(ctx context.Context, workflowID, triggeredBy uuid.UUID) (*domain.WorkflowExecution, error) {
	workflow, err := u.workflows.FindByID(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	execution, err := workflow.NewExecution(triggeredBy)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := u.workflows.CreateExecution(ctx, execution); err != nil {
		return nil, err
	}

	u.logger.Info("execution triggered",
		"execution_id", execution.ID,
		"workflow_id", workflowID)
	return execution, nil
}

// RecordExecutionResult transitions an execution to a new status
func (u *WorkflowUsecaseImpl) RecordExecutionResult(ctx context.Context, id uuid.UUID, status domain.ExecutionStatus, result json.RawMessage) (*domain.WorkflowExecution, error) {
	execution, err := u.workflows.FindExecutionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := execution.Transition(status, result); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if err := u.workflows.UpdateExecution(ctx, execution); err != nil {
		return nil, err
	}

	return execution, nil
}
