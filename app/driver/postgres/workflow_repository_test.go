package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-service/app/domain"
	"portal-service/app/utils/logger"
)

func createTestWorkflowRepository(t *testing.T) (*WorkflowRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewWorkflowRepository(mockDB, testLogger).(*WorkflowRepository)

	return repo, mockDB
}

func TestWorkflowRepository_FindByID(t *testing.T) {
	repo, mockDB := createTestWorkflowRepository(t)
	defer mockDB.Close()

	workflowID := uuid.New()
	companyID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	mockDB.ExpectQuery("SELECT (.+) FROM workflows WHERE id").
		WithArgs(workflowID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "company_id", "owner_id", "name", "definition", "is_active",
			"created_at", "updated_at", "archived_at",
		}).AddRow(workflowID, companyID, ownerID, "nightly-report", json.RawMessage(`{}`), true, now, now, (*time.Time)(nil)))

	workflow, err := repo.FindByID(context.Background(), workflowID)
	require.NoError(t, err)
	assert.Equal(t, workflowID, workflow.ID)
	assert.Equal(t, companyID, workflow.CompanyID)
	assert.True(t, workflow.IsActive)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestWorkflowRepository_FindByID_NotFound(t *testing.T) {
	repo, mockDB := createTestWorkflowRepository(t)
	defer mockDB.Close()

	workflowID := uuid.New()

	mockDB.ExpectQuery("SELECT (.+) FROM workflows WHERE id").
		WithArgs(workflowID).
		WillReturnError(pgx.ErrNoRows)

	workflow, err := repo.FindByID(context.Background(), workflowID)
	assert.ErrorIs(t, err, domain.ErrWorkflowNotFound)
	assert.Nil(t, workflow)
}

func TestWorkflowRepository_Create(t *testing.T) {
	repo, mockDB := createTestWorkflowRepository(t)
	defer mockDB.Close()

	workflow, err := domain.NewWorkflow(uuid.New(), uuid.New(), "nightly-report", json.RawMessage(`{"steps":[]}`))
	require.NoError(t, err)

	mockDB.ExpectExec("INSERT INTO workflows").
		WithArgs(
			workflow.ID,
			workflow.CompanyID,
			workflow.OwnerID,
			workflow.Name,
			workflow.Definition,
			workflow.IsActive,
			workflow.CreatedAt,
			workflow.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), workflow))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestWorkflowRepository_Update_NotFound(t *testing.T) {
	repo, mockDB := createTestWorkflowRepository(t)
	defer mockDB.Close()

	workflow, err := domain.NewWorkflow(uuid.New(), uuid.New(), "nightly-report", nil)
	require.NoError(t, err)

	mockDB.ExpectExec("UPDATE workflows SET").
		WithArgs(
			workflow.ID,
			workflow.Name,
			workflow.Definition,
			workflow.IsActive,
			workflow.UpdatedAt,
			workflow.ArchivedAt,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), workflow), domain.ErrWorkflowNotFound)
}

func TestWorkflowRepository_Executions(t *testing.T) {
	repo, mockDB := createTestWorkflowRepository(t)
	defer mockDB.Close()

	workflow, err := domain.NewWorkflow(uuid.New(), uuid.New(), "nightly-report", nil)
	require.NoError(t, err)

	execution, err := workflow.NewExecution(uuid.New())
	require.NoError(t, err)

	mockDB.ExpectExec("INSERT INTO workflow_executions").
		WithArgs(
			execution.ID,
			execution.WorkflowID,
			execution.TriggeredBy,
			execution.Status,
			execution.Result,
			execution.StartedAt,
			execution.FinishedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.CreateExecution(context.Background(), execution))

	require.NoError(t, execution.Transition(domain.ExecutionStatusSucceeded, json.RawMessage(`{"rows":42}`)))

	mockDB.ExpectExec("UPDATE workflow_executions SET").
		WithArgs(
			execution.ID,
			execution.Status,
			execution.Result,
			execution.FinishedAt,
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateExecution(context.Background(), execution))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestWorkflowRepository_ListExecutions(t *testing.T) {
	repo, mockDB := createTestWorkflowRepository(t)
	defer mockDB.Close()

	workflowID := uuid.New()
	now := time.Now()

	mockDB.ExpectQuery("SELECT (.+) FROM workflow_executions WHERE workflow_id").
		WithArgs(workflowID, 20, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "workflow_id", "triggered_by", "status", "result", "started_at", "finished_at",
		}).
			AddRow(uuid.New(), workflowID, uuid.New(), domain.ExecutionStatusSucceeded, json.RawMessage(`{}`), now, &now).
			AddRow(uuid.New(), workflowID, uuid.New(), domain.ExecutionStatusRunning, json.RawMessage(nil), now, (*time.Time)(nil)))

	executions, err := repo.ListExecutions(context.Background(), workflowID, 20, 0)
	require.NoError(t, err)
	require.Len(t, executions, 2)
	assert.Equal(t, domain.ExecutionStatusSucceeded, executions[0].Status)
	assert.Equal(t, domain.ExecutionStatusRunning, executions[1].Status)
}
