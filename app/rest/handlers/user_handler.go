package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userUsecase port.UserUsecase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase port.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger.With("component", "user_handler"),
	}
}

// CreateUserRequest is the user provisioning payload
type CreateUserRequest struct {
	IdentityID string  `json:"identity_id" validate:"required,uuid"`
	Email      string  `json:"email" validate:"required,email"`
	Name       string  `json:"name,omitempty"`
	Role       string  `json:"role" validate:"required,oneof=admin se client"`
	CompanyID  *string `json:"company_id,omitempty" validate:"omitempty,uuid"`
}

// ChangeRoleRequest is the role change payload
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin se client"`
}

// AssignCompanyRequest is the company assignment payload
type AssignCompanyRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c echo.Context) error {
	limit, offset := pagingParams(c)

	if companyParam := c.QueryParam("company_id"); companyParam != "" {
		companyID, err := uuid.Parse(companyParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company ID"})
		}
		users, err := h.userUsecase.ListCompanyUsers(c.Request().Context(), companyID, limit, offset)
		if err != nil {
			return jsonError(c, err, "failed to list users")
		}
		return c.JSON(http.StatusOK, users)
	}

	users, err := h.userUsecase.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return jsonError(c, err, "failed to list users")
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/users/:userId
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user ID"})
	}

	user, err := h.userUsecase.GetUser(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err, "user not found")
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	identityID, err := uuid.Parse(req.IdentityID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid identity ID"})
	}

	createReq := &domain.CreateUserRequest{
		IdentityID: identityID,
		Email:      req.Email,
		Name:       req.Name,
		Role:       domain.UserRole(req.Role),
	}
	if req.CompanyID != nil {
		companyID, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company ID"})
		}
		createReq.CompanyID = &companyID
	}

	user, err := h.userUsecase.CreateUser(c.Request().Context(), createReq)
	if err != nil {
		h.logger.Error("user creation failed", "email", req.Email, "error", err)
		return jsonError(c, err, "failed to create user")
	}

	return c.JSON(http.StatusCreated, user)
}

// ChangeRole handles PUT /api/users/:userId/role
func (h *UserHandler) ChangeRole(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user ID"})
	}

	var req ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	user, err := h.userUsecase.ChangeUserRole(c.Request().Context(), id, domain.UserRole(req.Role))
	if err != nil {
		return jsonError(c, err, "failed to change role")
	}
	return c.JSON(http.StatusOK, user)
}

// AssignCompany handles PUT /api/users/:userId/company
func (h *UserHandler) AssignCompany(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user ID"})
	}

	var req AssignCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company ID"})
	}

	user, err := h.userUsecase.AssignUserCompany(c.Request().Context(), id, companyID)
	if err != nil {
		return jsonError(c, err, "failed to assign company")
	}
	return c.JSON(http.StatusOK, user)
}

// DeactivateUser handles DELETE /api/users/:userId
func (h *UserHandler) DeactivateUser(c echo.Context) error {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user ID"})
	}

	if err := h.userUsecase.DeactivateUser(c.Request().Context(), id); err != nil {
		return jsonError(c, err, "failed to deactivate user")
	}
	return c.NoContent(http.StatusNoContent)
}

func pagingParams(c echo.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	offset, _ = strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}
