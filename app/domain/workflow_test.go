package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-service/app/domain"
)

func TestNewWorkflow(t *testing.T) {
	companyID := uuid.New()
	ownerID := uuid.New()

	t.Run("valid workflow", func(t *testing.T) {
		wf, err := domain.NewWorkflow(companyID, ownerID, "nightly-report", json.RawMessage(`{"steps":[]}`))
		require.NoError(t, err)
		assert.Equal(t, companyID, wf.CompanyID)
		assert.Equal(t, ownerID, wf.OwnerID)
		assert.True(t, wf.IsActive)
	})

	t.Run("empty definition defaults to empty object", func(t *testing.T) {
		wf, err := domain.NewWorkflow(companyID, ownerID, "nightly-report", nil)
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(`{}`), wf.Definition)
	})

	t.Run("invalid definition", func(t *testing.T) {
		_, err := domain.NewWorkflow(companyID, ownerID, "nightly-report", json.RawMessage(`{broken`))
		assert.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := domain.NewWorkflow(companyID, ownerID, "", nil)
		assert.Error(t, err)
	})

	t.Run("missing company", func(t *testing.T) {
		_, err := domain.NewWorkflow(uuid.UUID{}, ownerID, "nightly-report", nil)
		assert.Error(t, err)
	})
}

func TestWorkflow_Archive(t *testing.T) {
	wf, err := domain.NewWorkflow(uuid.New(), uuid.New(), "nightly-report", nil)
	require.NoError(t, err)

	wf.Archive()
	assert.False(t, wf.IsActive)
	require.NotNil(t, wf.ArchivedAt)

	_, err = wf.NewExecution(uuid.New())
	assert.Error(t, err, "archived workflow must not accept new executions")
}

func TestWorkflowExecution_Transition(t *testing.T) {
	wf, err := domain.NewWorkflow(uuid.New(), uuid.New(), "nightly-report", nil)
	require.NoError(t, err)

	exec, err := wf.NewExecution(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, domain.ExecutionStatusQueued, exec.Status)
	assert.Nil(t, exec.FinishedAt)

	require.NoError(t, exec.Transition(domain.ExecutionStatusRunning, nil))
	assert.Equal(t, domain.ExecutionStatusRunning, exec.Status)
	assert.Nil(t, exec.FinishedAt)

	require.NoError(t, exec.Transition(domain.ExecutionStatusSucceeded, json.RawMessage(`{"rows":42}`)))
	assert.Equal(t, domain.ExecutionStatusSucceeded, exec.Status)
	require.NotNil(t, exec.FinishedAt)

	err = exec.Transition(domain.ExecutionStatusRunning, nil)
	assert.Error(t, err, "terminal executions must reject further transitions")
}

func TestWorkflowExecution_TransitionValidation(t *testing.T) {
	wf, err := domain.NewWorkflow(uuid.New(), uuid.New(), "nightly-report", nil)
	require.NoError(t, err)

	exec, err := wf.NewExecution(uuid.New())
	require.NoError(t, err)

	assert.Error(t, exec.Transition(domain.ExecutionStatus("paused"), nil))
	assert.Error(t, exec.Transition(domain.ExecutionStatusFailed, json.RawMessage(`{broken`)))
}
