package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	authpkg "github.com/industrikatalogen/api/internal/auth"
)

// JWT validates bearer tokens and threads the authenticated principal into
// the request context.
func JWT(manager *authpkg.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := BearerToken(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing or invalid authorization header"})
			}

			claims, err := manager.ParseToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			principal := authpkg.Principal{
				Email: claims.Email,
				Role:  claims.Role,
			}
			if id, err := uuid.Parse(claims.Subject); err == nil {
				principal.ID = id
			}
			if claims.CompanyID != "" {
				if companyID, err := uuid.Parse(claims.CompanyID); err == nil {
					principal.CompanyID = companyID
				}
			}

			c.Set(ContextKeyPrincipal, principal)
			return next(c)
		}
	}
}

// BearerToken extracts the bearer credential from the Authorization header.
func BearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
