package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/industrikatalogen/api/internal/auth"
	"github.com/industrikatalogen/api/internal/config"
	"github.com/industrikatalogen/api/internal/database"
	"github.com/industrikatalogen/api/internal/handler"
	"github.com/industrikatalogen/api/internal/identity"
	"github.com/industrikatalogen/api/internal/importer"
	middlewarepkg "github.com/industrikatalogen/api/internal/middleware"
	"github.com/industrikatalogen/api/internal/repository"
	"github.com/industrikatalogen/api/internal/router"
	"github.com/industrikatalogen/api/internal/service"
	"github.com/industrikatalogen/api/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	adminUsersRepo := repository.NewPGXAdminUsersRepository(pool)
	companiesRepo := repository.NewPGXCompaniesRepository(pool)
	companyUsersRepo := repository.NewPGXCompanyUsersRepository(pool)
	claimsRepo := repository.NewPGXClaimsRepository(pool)
	quotesRepo := repository.NewPGXQuotesRepository(pool)

	var idp service.IdentityProvider
	if cfg.Cognito.Region != "" && cfg.Cognito.AppClientID != "" {
		provider, err := identity.NewCognitoProvider(ctx, cfg.Cognito.Region, cfg.Cognito.AppClientID)
		if err != nil {
			log.Fatalf("failed to init identity provider: %v", err)
		}
		idp = provider
	}

	var attachments service.AttachmentStore
	if cfg.Storage.Region != "" && cfg.Storage.Bucket != "" {
		store, err := storage.NewS3Store(ctx, cfg.Storage.Region, cfg.Storage.Bucket)
		if err != nil {
			log.Fatalf("failed to init attachment storage: %v", err)
		}
		attachments = store
	}

	var sheetReader *importer.SheetReader
	if cfg.SheetsAPIKey != "" {
		sheetReader, err = importer.NewSheetReader(ctx, cfg.SheetsAPIKey)
		if err != nil {
			log.Fatalf("failed to init sheets reader: %v", err)
		}
	}

	authService := service.NewAuthService(adminUsersRepo, jwtManager, idp)
	companyAuthService := service.NewCompanyAuthService(companyUsersRepo)
	companiesService := service.NewCompaniesService(companiesRepo)
	claimsService := service.NewClaimsService(claimsRepo, companiesRepo)
	quotesService := service.NewQuotesService(quotesRepo, companiesRepo, attachments)
	userService := service.NewUserService(adminUsersRepo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, router.Handlers{
		Auth:           handler.NewAuthHandler(authService),
		CompanyAuth:    handler.NewCompanyAuthHandler(companyAuthService),
		Companies:      handler.NewCompaniesHandler(companiesService),
		AdminCompanies: handler.NewAdminCompaniesHandler(companiesService),
		Claims:         handler.NewClaimsHandler(claimsService),
		AdminClaims:    handler.NewAdminClaimsHandler(claimsService),
		Quotes:         handler.NewQuotesHandler(quotesService),
		Users:          handler.NewUserAdminHandler(userService),
		Import:         handler.NewImportHandler(companiesService, sheetReader),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
