package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/repository"
	"github.com/industrikatalogen/api/internal/service"
)

// CompaniesHandler exposes the public directory endpoints.
type CompaniesHandler struct {
	service *service.CompaniesService
}

// NewCompaniesHandler creates a new handler instance.
func NewCompaniesHandler(service *service.CompaniesService) *CompaniesHandler {
	return &CompaniesHandler{service: service}
}

// List handles GET /api/companies requests.
func (h *CompaniesHandler) List(c echo.Context) error {
	filter := dto.ListFilter{
		Search: strings.TrimSpace(c.QueryParam("search")),
		Region: strings.TrimSpace(c.QueryParam("region")),
		Sort:   strings.TrimSpace(c.QueryParam("sort")),
		Limit:  parseIntDefault(c.QueryParam("limit"), 20),
		Offset: parseIntDefault(c.QueryParam("offset"), 0),
	}

	for _, raw := range c.QueryParams()["categories"] {
		for _, category := range strings.Split(raw, ",") {
			if category = strings.TrimSpace(category); category != "" {
				filter.Categories = append(filter.Categories, category)
			}
		}
	}

	companies, err := h.service.ListCompanies(c.Request().Context(), filter)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list companies")
	}

	return Success(c, http.StatusOK, "companies retrieved", companies)
}

// Get handles GET /api/companies/:slug requests.
func (h *CompaniesHandler) Get(c echo.Context) error {
	company, err := h.service.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Error(c, http.StatusNotFound, "company not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to fetch company")
	}
	return Success(c, http.StatusOK, "company retrieved", company)
}

// Regions handles GET /api/regions requests.
func (h *CompaniesHandler) Regions(c echo.Context) error {
	regions, err := h.service.Regions(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list regions")
	}
	return Success(c, http.StatusOK, "regions retrieved", regions)
}

// Categories handles GET /api/categories requests.
func (h *CompaniesHandler) Categories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list categories")
	}
	return Success(c, http.StatusOK, "categories retrieved", categories)
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
