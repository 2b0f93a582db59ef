package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/industrikatalogen/api/internal/auth"
	"github.com/industrikatalogen/api/internal/config"
	"github.com/industrikatalogen/api/internal/handler"
	middlewarepkg "github.com/industrikatalogen/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth           *handler.AuthHandler
	CompanyAuth    *handler.CompanyAuthHandler
	Companies      *handler.CompaniesHandler
	AdminCompanies *handler.AdminCompaniesHandler
	Claims         *handler.ClaimsHandler
	AdminClaims    *handler.AdminClaimsHandler
	Quotes         *handler.QuotesHandler
	Users          *handler.UserAdminHandler
	Import         *handler.ImportHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	api := e.Group("/api")

	api.GET("/companies", handlers.Companies.List)
	api.GET("/companies/:slug", handlers.Companies.Get)
	api.GET("/regions", handlers.Companies.Regions)
	api.GET("/categories", handlers.Companies.Categories)

	submitLimiter := middlewarepkg.SubmissionRateLimiter(cfg.RateLimitSubmit)
	api.POST("/claim-requests", handlers.Claims.Submit, submitLimiter)
	api.POST("/quote-requests", handlers.Quotes.Submit, submitLimiter)
	api.POST("/general-quote-requests", handlers.Quotes.SubmitGeneral, submitLimiter)

	api.POST("/company/login", handlers.CompanyAuth.Login)
	api.GET("/company/verify", handlers.CompanyAuth.Verify)

	api.POST("/admin/login", handlers.Auth.Login)
	api.POST("/admin/idp-login", handlers.Auth.LoginIdP)

	admin := api.Group("/admin")
	admin.Use(middlewarepkg.JWT(jwtManager))
	admin.Use(middlewarepkg.RequireRole(auth.RoleAdmin))

	admin.GET("/claims", handlers.AdminClaims.List)
	admin.POST("/claims/:id/approve", handlers.AdminClaims.Approve)
	admin.POST("/claims/:id/reject", handlers.AdminClaims.Reject)

	admin.GET("/quote-requests", handlers.Quotes.ListAdmin)

	admin.DELETE("/company-users/:id", handlers.CompanyAuth.Revoke)

	admin.GET("/companies", handlers.AdminCompanies.List)
	admin.POST("/companies", handlers.AdminCompanies.Create)
	admin.PATCH("/companies/:id", handlers.AdminCompanies.Update)
	admin.POST("/companies/import", handlers.Import.ImportCSV)
	admin.POST("/companies/import-sheet", handlers.Import.ImportSheet)

	admin.GET("/users", handlers.Users.List)
	admin.POST("/users", handlers.Users.Create)
	admin.PATCH("/users/:id", handlers.Users.Update)
	admin.DELETE("/users/:id", handlers.Users.Delete)
}
