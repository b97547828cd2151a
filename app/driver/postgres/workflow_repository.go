package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// WorkflowRepository implements port.WorkflowRepository for PostgreSQL
type WorkflowRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewWorkflowRepository creates a new PostgreSQL workflow repository
func NewWorkflowRepository(db DatabaseIface, logger *slog.Logger) port.WorkflowRepository {
	return &WorkflowRepository{
		db:     db,
		logger: logger.With("component", "workflow_repository"),
	}
}

const workflowColumns = `id, company_id, owner_id, name, definition, is_active, created_at, updated_at, archived_at`

// FindByID retrieves a workflow by ID
func (r *WorkflowRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Workflow, error) {
	query := `SELECT ` + workflowColumns + ` FROM workflows WHERE id = $1`

	workflow, err := r.scanWorkflow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkflowNotFound
		}
		r.logger.Error("failed to get workflow", "workflow_id", id, "error", err)
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}

	return workflow, nil
}

// ListByCompany retrieves workflows owned by a company
func (r *WorkflowRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*domain.Workflow, error) {
	query := `SELECT ` + workflowColumns + ` FROM workflows WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		r.logger.Error("failed to list workflows", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	defer rows.Close()

	var workflows []*domain.Workflow
	for rows.Next() {
		workflow, err := r.scanWorkflow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workflow: %w", err)
		}
		workflows = append(workflows, workflow)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workflows: %w", err)
	}

	return workflows, nil
}

// Create inserts a new workflow
func (r *WorkflowRepository) Create(ctx context.Context, workflow *domain.Workflow) error {
	query := `
		INSERT INTO workflows (
			id, company_id, owner_id, name, definition, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`

	_, err := r.db.Exec(ctx, query,
		workflow.ID,
		workflow.CompanyID,
		workflow.OwnerID,
		workflow.Name,
		workflow.Definition,
		workflow.IsActive,
		workflow.CreatedAt,
		workflow.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create workflow", "workflow_id", workflow.ID, "error", err)
		return fmt.Errorf("failed to create workflow: %w", err)
	}

	r.logger.Info("workflow created", "workflow_id", workflow.ID, "company_id", workflow.CompanyID)
	return nil
}

// Update persists workflow changes
func (r *WorkflowRepository) Update(ctx context.Context, workflow *domain.Workflow) error {
	query := `
		UPDATE workflows SET
			name = $2, definition = $3, is_active = $4, updated_at = $5, archived_at = $6
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		workflow.ID,
		workflow.Name,
		workflow.Definition,
		workflow.IsActive,
		workflow.UpdatedAt,
		workflow.ArchivedAt,
	)
	if err != nil {
		r.logger.Error("failed to update workflow", "workflow_id", workflow.ID, "error", err)
		return fmt.Errorf("failed to update workflow: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrWorkflowNotFound
	}

	return nil
}

const executionColumns = `id, workflow_id, triggered_by, status, result, started_at, finished_at`

// FindExecutionByID retrieves an execution by ID
func (r *WorkflowRepository) FindExecutionByID(ctx context.Context, id uuid.UUID) (*domain.WorkflowExecution, error) {
	query := `SELECT ` + executionColumns + ` FROM workflow_executions WHERE id = $1`

	execution, err := r.scanExecution(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExecutionNotFound
		}
		r.logger.Error("failed to get execution", "execution_id", id, "error", err)
		return nil, fmt.Errorf("failed to get execution: %w", err)
	}

	return execution, nil
}

// ListExecutions retrieves executions of a workflow, newest first
func (r *WorkflowRepository) ListExecutions(ctx context.Context, workflowID uuid.UUID, limit, offset int) ([]*domain.WorkflowExecution, error) {
	query := `SELECT ` + executionColumns + ` FROM workflow_executions WHERE workflow_id = $1 ORDER BY started_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, workflowID, limit, offset)
	if err != nil {
		r.logger.Error("failed to list executions", "workflow_id", workflowID, "error", err)
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	defer rows.Close()

	var executions []*domain.WorkflowExecution
	for rows.Next() {
		execution, err := r.scanExecution(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan execution: %w", err)
		}
		executions = append(executions, execution)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating executions: %w", err)
	}

	return executions, nil
}

// CreateExecution inserts a new execution
func (r *WorkflowRepository) CreateExecution(ctx context.Context, execution *domain.WorkflowExecution) error {
	query := `
		INSERT INTO workflow_executions (
			id, workflow_id, triggered_by, status, result, started_at, finished_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)`

	_, err := r.db.Exec(ctx, query,
		execution.ID,
		execution.WorkflowID,
		execution.TriggeredBy,
		execution.Status,
		execution.Result,
		execution.StartedAt,
		execution.FinishedAt,
	)
	if err != nil {
		r.logger.Error("failed to create execution", "execution_id", execution.ID, "error", err)
		return fmt.Errorf("failed to create execution: %w", err)
	}

	return nil
}

// UpdateExecution persists execution state changes
func (r *WorkflowRepository) UpdateExecution(ctx context.Context, execution *domain.WorkflowExecution) error {
	query := `
		UPDATE workflow_executions SET
			status = $2, result = $3, finished_at = $4
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		execution.ID,
		execution.Status,
		execution.Result,
		execution.FinishedAt,
	)
	if err != nil {
		r.logger.Error("failed to update execution", "execution_id", execution.ID, "error", err)
		return fmt.Errorf("failed to update execution: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrExecutionNotFound
	}

	return nil
}

func (r *WorkflowRepository) scanWorkflow(row pgx.Row) (*domain.Workflow, error) {
	var workflow domain.Workflow
	err := row.Scan(
		&workflow.ID,
		&workflow.CompanyID,
		&workflow.OwnerID,
		&workflow.Name,
		&workflow.Definition,
		&workflow.IsActive,
		&workflow.CreatedAt,
		&workflow.UpdatedAt,
		&workflow.ArchivedAt,
	)
	if err != nil {
		return nil, err
	}
	return &workflow, nil
}

func (r *WorkflowRepository) scanExecution(row pgx.Row) (*domain.WorkflowExecution, error) {
	var execution domain.WorkflowExecution
	err := row.Scan(
		&execution.ID,
		&execution.WorkflowID,
		&execution.TriggeredBy,
		&execution.Status,
		&execution.Result,
		&execution.StartedAt,
		&execution.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	return &execution, nil
}
