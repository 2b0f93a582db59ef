package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/repository"
	"github.com/industrikatalogen/api/internal/service"
)

// ClaimsHandler exposes the public ownership-claim submission endpoint.
type ClaimsHandler struct {
	claims *service.ClaimsService
}

// NewClaimsHandler constructs a ClaimsHandler.
func NewClaimsHandler(claims *service.ClaimsService) *ClaimsHandler {
	return &ClaimsHandler{claims: claims}
}

// Submit handles POST /api/claim-requests.
func (h *ClaimsHandler) Submit(c echo.Context) error {
	var req dto.CreateClaimRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, "missing required fields")
	}

	claim, err := h.claims.Submit(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCompanyNotFound):
			return Error(c, http.StatusNotFound, "company not found")
		case errors.Is(err, service.ErrConsentRequired),
			errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrRelationshipRequired),
			errors.Is(err, service.ErrInvalidEmail):
			return Error(c, http.StatusBadRequest, err.Error())
		default:
			return Error(c, http.StatusInternalServerError, "unable to submit claim")
		}
	}

	return Success(c, http.StatusCreated, "claim submitted", dto.ClaimSubmittedResponse{
		ID:     claim.ID.String(),
		Status: claim.Status,
	})
}
