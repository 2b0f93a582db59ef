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

// CompanyAuthHandler exposes the legacy token-based company login.
type CompanyAuthHandler struct {
	companyAuth *service.CompanyAuthService
}

// NewCompanyAuthHandler constructs a CompanyAuthHandler.
func NewCompanyAuthHandler(companyAuth *service.CompanyAuthService) *CompanyAuthHandler {
	return &CompanyAuthHandler{companyAuth: companyAuth}
}

// Login handles POST /api/company/login requests.
func (h *CompanyAuthHandler) Login(c echo.Context) error {
	var req dto.CompanyLoginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.AccessToken) == "" {
		return Error(c, http.StatusBadRequest, "email and access token are required")
	}

	user, err := h.companyAuth.Login(c.Request().Context(), req.Email, req.AccessToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return Error(c, http.StatusInternalServerError, "unable to authenticate")
	}

	return Success(c, http.StatusOK, "login successful", dto.CompanyLoginResponse{
		CompanyUser: user,
		Token:       req.AccessToken,
	})
}

// Revoke handles DELETE /api/admin/company-users/:id, deactivating the
// credential issued at claim approval.
func (h *CompanyAuthHandler) Revoke(c echo.Context) error {
	if err := h.companyAuth.Revoke(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrCompanyUserNotFound) {
			return Error(c, http.StatusNotFound, "company user not found")
		}
		return Error(c, http.StatusBadRequest, err.Error())
	}
	return Success(c, http.StatusOK, "company access revoked", nil)
}

// Verify handles GET /api/company/verify requests with a bearer access token.
func (h *CompanyAuthHandler) Verify(c echo.Context) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing or invalid authorization header")
	}

	user, err := h.companyAuth.Verify(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return Error(c, http.StatusInternalServerError, "unable to verify token")
	}

	return Success(c, http.StatusOK, "token verified", user)
}
