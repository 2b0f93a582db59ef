package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/service"
)

// AuthHandler exposes admin authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/admin/login requests (legacy password path).
func (h *AuthHandler) Login(c echo.Context) error {
	req, err := bindLogin(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return Error(c, http.StatusInternalServerError, "unable to authenticate")
	}

	return Success(c, http.StatusOK, "login successful", dto.LoginResponse{AccessToken: token})
}

// LoginIdP handles POST /api/admin/idp-login requests (identity provider path).
func (h *AuthHandler) LoginIdP(c echo.Context) error {
	req, err := bindLogin(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.LoginWithProvider(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return Error(c, http.StatusInternalServerError, "unable to authenticate")
	}

	return Success(c, http.StatusOK, "login successful", dto.LoginResponse{AccessToken: token})
}

func bindLogin(c echo.Context) (dto.LoginRequest, error) {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return req, errors.New("invalid payload")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return req, errors.New("email and password are required")
	}
	return req, nil
}
