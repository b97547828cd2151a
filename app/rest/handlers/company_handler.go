package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"portal-service/app/port"
)

// CompanyHandler handles company management HTTP requests
type CompanyHandler struct {
	companyUsecase port.CompanyUsecase
	logger         *slog.Logger
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyUsecase port.CompanyUsecase, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyUsecase: companyUsecase,
		logger:         logger.With("component", "company_handler"),
	}
}

// CompanyRequest is the create/rename payload
type CompanyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// ListCompanies handles GET /api/companies
func (h *CompanyHandler) ListCompanies(c echo.Context) error {
	companies, err := h.companyUsecase.ListCompanies(c.Request().Context())
	if err != nil {
		return jsonError(c, err, "failed to list companies")
	}
	return c.JSON(http.StatusOK, companies)
}

// GetCompany handles GET /api/companies/:companyId
func (h *CompanyHandler) GetCompany(c echo.Context) error {
	id, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company ID"})
	}

	company, err := h.companyUsecase.GetCompany(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err, "company not found")
	}
	return c.JSON(http.StatusOK, company)
}

// CreateCompany handles POST /api/companies
func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	company, err := h.companyUsecase.CreateCompany(c.Request().Context(), req.Name)
	if err != nil {
		h.logger.Error("company creation failed", "name", req.Name, "error", err)
		return jsonError(c, err, "failed to create company")
	}
	return c.JSON(http.StatusCreated, company)
}

// RenameCompany handles PUT /api/companies/:companyId
func (h *CompanyHandler) RenameCompany(c echo.Context) error {
	id, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company ID"})
	}

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	company, err := h.companyUsecase.RenameCompany(c.Request().Context(), id, req.Name)
	if err != nil {
		return jsonError(c, err, "failed to rename company")
	}
	return c.JSON(http.StatusOK, company)
}

// DeleteCompany handles DELETE /api/companies/:companyId
func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	id, err := uuid.Parse(c.Param("companyId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid company ID"})
	}

	if err := h.companyUsecase.DeleteCompany(c.Request().Context(), id); err != nil {
		return jsonError(c, err, "failed to delete company")
	}
	return c.NoContent(http.StatusNoContent)
}
