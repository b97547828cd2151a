package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portal-service/app/domain"
	"portal-service/app/port"
	"portal-service/app/rest/middleware"
)

// WorkflowHandler handles workflow HTTP requests
type WorkflowHandler struct {
	workflowUsecase port.WorkflowUsecase
	logger          *slog.Logger
}

// NewWorkflowHandler creates a new workflow handler
func NewWorkflowHandler(workflowUsecase port.WorkflowUsecase, logger *slog.Logger) *WorkflowHandler {
	return &WorkflowHandler{
		workflowUsecase: workflowUsecase,
		logger:          logger.With("component", "workflow_handler"),
	}
}

// WorkflowRequest is the create/update payload
type WorkflowRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=255"`
	Definition json.RawMessage `json:"definition,omitempty"`
}

// ExecutionResultRequest is the execution status transition payload
type ExecutionResultRequest struct {
	Status string          `json:"status" validate:"required,oneof=queued running succeeded failed"`
	Result json.RawMessage `json:"result,omitempty"`
}

// ListWorkflows handles GET /api/companies/:companyId/workflows
func (h *WorkflowHandler) ListWorkflows(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company ID"})
	}

	limit, offset := pagingParams(c)
	workflows, err := h.workflowUsecase.ListWorkflows(c.Request().Context(), companyID, limit, offset)
	if err != nil {
		return jsonError(c, err, "failed to list workflows")
	}
	return c.JSON(http.StatusOK, workflows)
}

// GetWorkflow handles GET /api/workflows/:workflowId
func (h *WorkflowHandler) GetWorkflow(c echo.Context) error {
	id, err := uuid.Parse(c.Param("workflowId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid workflow ID"})
	}

	workflow, err := h.workflowUsecase.GetWorkflow(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err, "workflow not found")
	}
	return c.JSON(http.StatusOK, workflow)
}

// CreateWorkflow handles POST /api/companies/:companyId/workflows. The
// authenticated user becomes the workflow owner.
func (h *WorkflowHandler) CreateWorkflow(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company ID"})
	}

	sessionCtx := middleware.SessionFromContext(c)
	if sessionCtx == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	var req WorkflowRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	workflow, err := h.workflowUsecase.CreateWorkflow(
		c.Request().Context(), companyID, sessionCtx.Identity.ID, req.Name, req.Definition)
	if err != nil {
		h.logger.Error("workflow creation failed",
			"company_id", companyID,
			"error", err)
		return jsonError(c, err, "failed to create workflow")
	}
	return c.JSON(http.StatusCreated, workflow)
}

// UpdateWorkflow handles PUT /api/workflows/:workflowId
func (h *WorkflowHandler) UpdateWorkflow(c echo.Context) error {
	id, err := uuid.Parse(c.Param("workflowId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid workflow ID"})
	}

	var req WorkflowRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	workflow, err := h.workflowUsecase.UpdateWorkflow(c.Request().Context(), id, req.Name, req.Definition)
	if err != nil {
		return jsonError(c, err, "failed to update workflow")
	}
	return c.JSON(http.StatusOK, workflow)
}

// ArchiveWorkflow handles DELETE /api/workflows/:workflowId
func (h *WorkflowHandler) ArchiveWorkflow(c echo.Context) error {
	id, err := uuid.Parse(c.Param("workflowId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid workflow ID"})
	}

	if err := h.workflowUsecase.ArchiveWorkflow(c.Request().Context(), id); err != nil {
		return jsonError(c, err, "failed to archive workflow")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListExecutions handles GET /api/workflows/:workflowId/executions
func (h *WorkflowHandler) ListExecutions(c echo.Context) error {
	workflowID, err := uuid.Parse(c.Param("workflowId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid workflow ID"})
	}

	limit, offset := pagingParams(c)
	executions, err := h.workflowUsecase.ListExecutions(c.Request().Context(), workflowID, limit, offset)
	if err != nil {
		return jsonError(c, err, "failed to list executions")
	}
	return c.JSON(http.StatusOK, executions)
}

// GetExecution handles GET /api/executions/:executionId
func (h *WorkflowHandler) GetExecution(c echo.Context) error {
	id, err := uuid.Parse(c.Param("executionId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid execution ID"})
	}

	execution, err := h.workflowUsecase.GetExecution(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err, "execution not found")
	}
	return c.JSON(http.StatusOK, execution)
}

// TriggerExecution handles POST /api/workflows/:workflowId/executions
func (h *WorkflowHandler) TriggerExecution(c echo.Context) error {
	workflowID, err := uuid.Parse(c.Param("workflowId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid workflow ID"})
	}

	sessionCtx := middleware.SessionFromContext(c)
	if sessionCtx == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
	}

	execution, err := h.workflowUsecase.TriggerExecution(c.Request().Context(), workflowID, sessionCtx.Identity.ID)
	if err != nil {
		return jsonError(c, err, "failed to trigger execution")
	}
	return c.JSON(http.StatusAccepted, execution)
}

// RecordExecutionResult handles PUT /api/executions/:executionId
func (h *WorkflowHandler) RecordExecutionResult(c echo.Context) error {
	id, err := uuid.Parse(c.Param("executionId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid execution ID"})
	}

	var req ExecutionResultRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	execution, err := h.workflowUsecase.RecordExecutionResult(
		c.Request().Context(), id, domain.ExecutionStatus(req.Status), req.Result)
	if err != nil {
		return jsonError(c, err, "failed to record execution result")
	}
	return c.JSON(http.StatusOK, execution)
}
