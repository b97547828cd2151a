package port

//go:generate mockgen -source=workflow_port.go -destination=../mocks/mock_workflow_port.go

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"portal-service/app/domain"
)

// WorkflowRepository defines workflow and execution data access
type WorkflowRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Workflow, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.Workflow, error)
	Create(ctx context.Context, workflow *domain.Workflow) error
	Update(ctx context.Context, workflow *domain.Workflow) error

	FindExecutionByID(ctx context.Context, id uuid.UUID) (*domain.WorkflowExecution, error)
	ListExecutions(ctx context.Context, workflowID uuid.UUID, limit, offset int) ([]*domain.WorkflowExecution, error)
	CreateExecution(ctx context.Context, execution *domain.WorkflowExecution) error
	UpdateExecution(ctx context.Context, execution *domain.WorkflowExecution) error
}

// WorkflowUsecase defines workflow management business logic
type WorkflowUsecase interface {
	GetWorkflow(ctx context.Context, id uuid.UUID) (*domain.Workflow, error)
	ListWorkflows(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.Workflow, error)
	CreateWorkflow(ctx context.Context, companyID, ownerID uuid.UUID, name string, definition json.RawMessage) (*domain.Workflow, error)
	UpdateWorkflow(ctx context.Context, id uuid.UUID, name string, definition json.RawMessage) (*domain.Workflow, error)
	ArchiveWorkflow(ctx context.Context, id uuid.UUID) error

	GetExecution(ctx context.Context, id uuid.UUID) (*domain.WorkflowExecution, error)
	ListExecutions(ctx context.Context, workflowID uuid.UUID, limit, offset int) ([]*domain.WorkflowExecution, error)
	TriggerExecution(ctx context.Context, workflowID, triggeredBy uuid.UUID) (*domain.WorkflowExecution, error)
	RecordExecutionResult(ctx context.Context, id uuid.UUID, status domain.ExecutionStatus, result json.RawMessage) (*domain.WorkflowExecution, error)
}
