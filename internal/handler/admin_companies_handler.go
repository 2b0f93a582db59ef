package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/repository"
	"github.com/industrikatalogen/api/internal/service"
)

// AdminCompaniesHandler exposes the back-office company CRUD endpoints.
type AdminCompaniesHandler struct {
	companies *service.CompaniesService
}

// NewAdminCompaniesHandler constructs an AdminCompaniesHandler.
func NewAdminCompaniesHandler(companies *service.CompaniesService) *AdminCompaniesHandler {
	return &AdminCompaniesHandler{companies: companies}
}

// List handles GET /api/admin/companies with the public filter set and a
// wider page window.
func (h *AdminCompaniesHandler) List(c echo.Context) error {
	filter := dto.ListFilter{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Region: strings.TrimSpace(c.QueryParam("region")),
		Sort:   strings.TrimSpace(c.QueryParam("sort")),
		Limit:  parseIntDefault(c.QueryParam("limit"), 100),
		Offset: parseIntDefault(c.QueryParam("offset"), 0),
	}
	for _, raw := range c.QueryParams()["categories"] {
		for _, category := range strings.Split(raw, ",") {
			if category = strings.TrimSpace(category); category != "" {
				filter.Categories = append(filter.Categories, category)
			}
		}
	}

	companies, err := h.companies.ListCompaniesAdmin(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list companies")
	}
	return Success(c, http.StatusOK, "companies retrieved", companies)
}

// Create handles POST /api/admin/companies.
func (h *AdminCompaniesHandler) Create(c echo.Context) error {
	var req dto.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, "missing required fields")
	}

	company, err := h.companies.CreateCompany(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrSlugDuplicate) {
			return Error(c, http.StatusConflict, "a company with this name already exists")
		}
		return Error(c, http.StatusBadRequest, err.Error())
	}
	return Success(c, http.StatusCreated, "company created", company)
}

// Update handles PATCH /api/admin/companies/:id.
func (h *AdminCompaniesHandler) Update(c echo.Context) error {
	var req dto.UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid fields")
	}

	company, err := h.companies.UpdateCompany(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Error(c, http.StatusNotFound, "company not found")
		}
		return Error(c, http.StatusBadRequest, err.Error())
	}
	return Success(c, http.StatusOK, "company updated", company)
}
