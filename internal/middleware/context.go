package middleware

import (
	"github.com/labstack/echo/v4"

	authpkg "github.com/industrikatalogen/api/internal/auth"
)

// Context keys used to store authentication metadata.
const (
	ContextKeyPrincipal = "principal"
	ContextKeyRequestID = "request_id"
)

// PrincipalFromContext extracts the authenticated principal, returning an
// anonymous principal when the request carries no session.
func PrincipalFromContext(c echo.Context) authpkg.Principal {
	if p, ok := c.Get(ContextKeyPrincipal).(authpkg.Principal); ok {
		return p
	}
	return authpkg.Principal{Role: authpkg.RoleAnonymous}
}
