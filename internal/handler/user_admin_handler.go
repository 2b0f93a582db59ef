package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/middleware"
	"github.com/industrikatalogen/api/internal/repository"
	"github.com/industrikatalogen/api/internal/service"
)

// UserAdminHandler manages back-office accounts. Every operation requires
// the caller to hold super-admin privileges.
type UserAdminHandler struct {
	users *service.UserService
}

// NewUserAdminHandler constructs a UserAdminHandler.
func NewUserAdminHandler(users *service.UserService) *UserAdminHandler {
	return &UserAdminHandler{users: users}
}

func (h *UserAdminHandler) requireSuperAdmin(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)
	ok, err := h.users.IsSuperAdmin(c.Request().Context(), principal.ID)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "unable to verify permissions")
	}
	if !ok {
		return Error(c, http.StatusForbidden, "super-admin privileges required")
	}
	return nil
}

// List handles GET /api/admin/users.
func (h *UserAdminHandler) List(c echo.Context) error {
	if err := h.requireSuperAdmin(c); err != nil {
		return err
	}

	users, err := h.users.ListUsers(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list users")
	}
	return Success(c, http.StatusOK, "users retrieved", users)
}

// Create handles POST /api/admin/users.
func (h *UserAdminHandler) Create(c echo.Context) error {
	if err := h.requireSuperAdmin(c); err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return Error(c, http.StatusBadRequest, "missing required fields")
	}

	user, err := h.users.CreateUser(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return Error(c, http.StatusConflict, "email already exists")
		}
		return Error(c, http.StatusInternalServerError, "unable to create user")
	}
	return Success(c, http.StatusCreated, "user created", user)
}

// Update handles PATCH /api/admin/users/:id.
func (h *UserAdminHandler) Update(c echo.Context) error {
	if err := h.requireSuperAdmin(c); err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.UpdateUser(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return Error(c, http.StatusNotFound, "user not found")
		case errors.Is(err, repository.ErrEmailDuplicate):
			return Error(c, http.StatusConflict, "email already exists")
		default:
			return Error(c, http.StatusBadRequest, err.Error())
		}
	}
	return Success(c, http.StatusOK, "user updated", user)
}

// Delete handles DELETE /api/admin/users/:id.
func (h *UserAdminHandler) Delete(c echo.Context) error {
	if err := h.requireSuperAdmin(c); err != nil {
		return err
	}

	principal := middleware.PrincipalFromContext(c)
	if principal.ID.String() == c.Param("id") {
		return Error(c, http.StatusBadRequest, "cannot delete your own account")
	}

	if err := h.users.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Error(c, http.StatusNotFound, "user not found")
		}
		return Error(c, http.StatusBadRequest, err.Error())
	}
	return Success(c, http.StatusOK, "user deleted", nil)
}
