package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/middleware"
	"github.com/industrikatalogen/api/internal/repository"
	"github.com/industrikatalogen/api/internal/service"
)

// AdminClaimsHandler exposes the claim review endpoints for administrators.
type AdminClaimsHandler struct {
	claims *service.ClaimsService
}

// NewAdminClaimsHandler constructs an AdminClaimsHandler.
func NewAdminClaimsHandler(claims *service.ClaimsService) *AdminClaimsHandler {
	return &AdminClaimsHandler{claims: claims}
}

// List handles GET /api/admin/claims requests.
func (h *AdminClaimsHandler) List(c echo.Context) error {
	status := strings.TrimSpace(c.QueryParam("status"))
	claims, err := h.claims.List(c.Request().Context(), status)
	if err != nil {
		if strings.Contains(err.Error(), "unknown claim status") {
			return Error(c, http.StatusBadRequest, err.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to list claims")
	}
	return Success(c, http.StatusOK, "claims retrieved", claims)
}

// Approve handles POST /api/admin/claims/:id/approve. The access token in
// the response is surfaced exactly once.
func (h *AdminClaimsHandler) Approve(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	user, token, err := h.claims.Approve(c.Request().Context(), c.Param("id"), principal.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClaimID):
			return Error(c, http.StatusBadRequest, "invalid claim id")
		case errors.Is(err, repository.ErrClaimNotFound):
			return Error(c, http.StatusNotFound, "claim not found")
		case errors.Is(err, repository.ErrClaimAlreadyReviewed):
			return Error(c, http.StatusConflict, "claim already reviewed")
		case errors.Is(err, repository.ErrCompanyAlreadyClaimed):
			return Error(c, http.StatusConflict, "company already has an active user")
		case errors.Is(err, repository.ErrCompanyUserEmailDuplicate):
			return Error(c, http.StatusConflict, "email already bound to a company user")
		default:
			return Error(c, http.StatusInternalServerError, "unable to approve claim")
		}
	}

	return Success(c, http.StatusOK, "claim approved", dto.ClaimApprovedResponse{
		ClaimID:     c.Param("id"),
		CompanyID:   user.CompanyID.String(),
		Email:       user.Email,
		AccessToken: token,
	})
}

// Reject handles POST /api/admin/claims/:id/reject.
func (h *AdminClaimsHandler) Reject(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	var req dto.RejectClaimRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	err := h.claims.Reject(c.Request().Context(), c.Param("id"), principal.ID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidClaimID):
			return Error(c, http.StatusBadRequest, "invalid claim id")
		case errors.Is(err, repository.ErrClaimNotFound):
			return Error(c, http.StatusNotFound, "claim not found")
		case errors.Is(err, repository.ErrClaimAlreadyReviewed):
			return Error(c, http.StatusConflict, "claim already reviewed")
		default:
			return Error(c, http.StatusInternalServerError, "unable to reject claim")
		}
	}

	return Success(c, http.StatusOK, "claim rejected", nil)
}
