package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	authpkg "github.com/industrikatalogen/api/internal/auth"
	"github.com/industrikatalogen/api/internal/entity"
	"github.com/industrikatalogen/api/internal/repository"
	"github.com/industrikatalogen/api/internal/service"
)

type stubAdminUsersRepo struct {
	findByEmail func(ctx context.Context, email string) (*entity.AdminUser, error)
	findByID    func(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	create      func(ctx context.Context, email, passwordHash, role string, superAdmin bool) (*entity.AdminUser, error)
	list        func(ctx context.Context) ([]entity.AdminUser, error)
	update      func(ctx context.Context, id uuid.UUID, email, passwordHash, role *string, superAdmin *bool) (*entity.AdminUser, error)
	delete      func(ctx context.Context, id uuid.UUID) error
}

func (s *stubAdminUsersRepo) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	if s.findByEmail != nil {
		return s.findByEmail(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (s *stubAdminUsersRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	if s.findByID != nil {
		return s.findByID(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (s *stubAdminUsersRepo) Create(ctx context.Context, email, passwordHash, role string, superAdmin bool) (*entity.AdminUser, error) {
	if s.create != nil {
		return s.create(ctx, email, passwordHash, role, superAdmin)
	}
	return nil, errors.New("not implemented")
}

func (s *stubAdminUsersRepo) List(ctx context.Context) ([]entity.AdminUser, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, errors.New("not implemented")
}

func (s *stubAdminUsersRepo) Update(ctx context.Context, id uuid.UUID, email, passwordHash, role *string, superAdmin *bool) (*entity.AdminUser, error) {
	if s.update != nil {
		return s.update(ctx, id, email, passwordHash, role, superAdmin)
	}
	return nil, errors.New("not implemented")
}

func (s *stubAdminUsersRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.delete != nil {
		return s.delete(ctx, id)
	}
	return errors.New("not implemented")
}

type stubProvider struct {
	signIn func(ctx context.Context, email, password string) (*service.ProviderIdentity, error)
}

func (s *stubProvider) SignIn(ctx context.Context, email, password string) (*service.ProviderIdentity, error) {
	return s.signIn(ctx, email, password)
}

func TestAuthHandler_Login(t *testing.T) {
	e := newTestEcho()
	jwtManager := authpkg.NewJWTManager("test-secret", time.Hour)
	hash, _ := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	admin := &entity.AdminUser{ID: uuid.New(), Email: "admin@example.com", PasswordHash: string(hash), Role: authpkg.RoleAdmin}

	newHandler := func(repo repository.AdminUsersRepository) *AuthHandler {
		return NewAuthHandler(service.NewAuthService(repo, jwtManager, nil))
	}

	t.Run("missing credentials", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/admin/login", map[string]any{"email": "admin@example.com"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = newHandler(&stubAdminUsersRepo{}).Login(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/admin/login", map[string]any{
			"email": "ghost@example.com", "password": "hunter22",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = newHandler(&stubAdminUsersRepo{
			findByEmail: func(ctx context.Context, email string) (*entity.AdminUser, error) {
				return nil, repository.ErrUserNotFound
			},
		}).Login(c)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/admin/login", map[string]any{
			"email": "admin@example.com", "password": "nope",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = newHandler(&stubAdminUsersRepo{
			findByEmail: func(ctx context.Context, email string) (*entity.AdminUser, error) {
				return admin, nil
			},
		}).Login(c)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/admin/login", map[string]any{
			"email": "admin@example.com", "password": "hunter22",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = newHandler(&stubAdminUsersRepo{
			findByEmail: func(ctx context.Context, email string) (*entity.AdminUser, error) {
				return admin, nil
			},
		}).Login(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp APIResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		data, _ := resp.Data.(map[string]any)
		token, _ := data["access_token"].(string)
		if token == "" {
			t.Fatalf("expected access token in response, got %v", resp.Data)
		}
		claims, err := jwtManager.ParseToken(token)
		if err != nil {
			t.Fatalf("expected issued token to parse: %v", err)
		}
		if claims.Role != authpkg.RoleAdmin {
			t.Fatalf("expected admin role claim, got %q", claims.Role)
		}
	})
}

func TestAuthHandler_LoginIdP(t *testing.T) {
	e := newTestEcho()
	jwtManager := authpkg.NewJWTManager("test-secret", time.Hour)
	admin := &entity.AdminUser{ID: uuid.New(), Email: "admin@example.com", Role: authpkg.RoleAdmin}

	t.Run("provider not configured", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/admin/idp-login", map[string]any{
			"email": "admin@example.com", "password": "hunter22",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewAuthHandler(service.NewAuthService(&stubAdminUsersRepo{}, jwtManager, nil))
		_ = handler.LoginIdP(c)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})

	t.Run("non-admin identity", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/admin/idp-login", map[string]any{
			"email": "user@example.com", "password": "hunter22",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		provider := &stubProvider{
			signIn: func(ctx context.Context, email, password string) (*service.ProviderIdentity, error) {
				return &service.ProviderIdentity{Email: email, Role: "viewer"}, nil
			},
		}
		handler := NewAuthHandler(service.NewAuthService(&stubAdminUsersRepo{}, jwtManager, provider))
		_ = handler.LoginIdP(c)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/admin/idp-login", map[string]any{
			"email": "admin@example.com", "password": "hunter22",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		provider := &stubProvider{
			signIn: func(ctx context.Context, email, password string) (*service.ProviderIdentity, error) {
				return &service.ProviderIdentity{Email: email, Role: "admin"}, nil
			},
		}
		handler := NewAuthHandler(service.NewAuthService(&stubAdminUsersRepo{
			findByEmail: func(ctx context.Context, email string) (*entity.AdminUser, error) {
				return admin, nil
			},
		}, jwtManager, provider))
		_ = handler.LoginIdP(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
