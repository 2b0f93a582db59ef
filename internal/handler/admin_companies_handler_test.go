package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/entity"
	"github.com/industrikatalogen/api/internal/repository"
	"github.com/industrikatalogen/api/internal/service"
)

func TestAdminCompaniesHandler_List(t *testing.T) {
	e := newTestEcho()
	callerID := uuid.New()

	handler := NewAdminCompaniesHandler(service.NewCompaniesService(&stubCompaniesRepo{
		list: func(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error) {
			if filter.Limit != 100 {
				t.Fatalf("expected default limit 100, got %d", filter.Limit)
			}
			if filter.Region != "Norrbotten" {
				t.Fatalf("expected region filter, got %q", filter.Region)
			}
			return []entity.Company{{Name: "Svets AB"}}, nil
		},
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/companies?region=Norrbotten", nil)
	rec := httptest.NewRecorder()
	_ = handler.List(adminContext(e, req, rec, callerID))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminCompaniesHandler_Create(t *testing.T) {
	e := newTestEcho()
	callerID := uuid.New()

	t.Run("missing name", func(t *testing.T) {
		handler := NewAdminCompaniesHandler(service.NewCompaniesService(&stubCompaniesRepo{}))
		req := jsonRequest(http.MethodPost, "/api/admin/companies", map[string]any{"city": "Umeå"})
		rec := httptest.NewRecorder()
		_ = handler.Create(adminContext(e, req, rec, callerID))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("duplicate slug", func(t *testing.T) {
		handler := NewAdminCompaniesHandler(service.NewCompaniesService(&stubCompaniesRepo{
			create: func(ctx context.Context, company *entity.Company) (*entity.Company, error) {
				return nil, repository.ErrSlugDuplicate
			},
		}))
		req := jsonRequest(http.MethodPost, "/api/admin/companies", map[string]any{"name": "Svets AB"})
		rec := httptest.NewRecorder()
		_ = handler.Create(adminContext(e, req, rec, callerID))
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		handler := NewAdminCompaniesHandler(service.NewCompaniesService(&stubCompaniesRepo{
			create: func(ctx context.Context, company *entity.Company) (*entity.Company, error) {
				if company.Slug != "bygg-och-smide" {
					t.Fatalf("expected generated slug, got %q", company.Slug)
				}
				company.ID = uuid.New()
				return company, nil
			},
		}))
		req := jsonRequest(http.MethodPost, "/api/admin/companies", map[string]any{"name": "Bygg & Smide"})
		rec := httptest.NewRecorder()
		_ = handler.Create(adminContext(e, req, rec, callerID))
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}

		var resp APIResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		data, _ := resp.Data.(map[string]any)
		if data["slug"] != "bygg-och-smide" {
			t.Fatalf("expected slug in response, got %v", resp.Data)
		}
	})
}

func TestAdminCompaniesHandler_Update(t *testing.T) {
	e := newTestEcho()
	callerID := uuid.New()
	companyID := uuid.New()

	newContext := func(rec *httptest.ResponseRecorder, id string, payload map[string]any) echo.Context {
		req := jsonRequest(http.MethodPatch, "/api/admin/companies/"+id, payload)
		c := adminContext(e, req, rec, callerID)
		c.SetParamNames("id")
		c.SetParamValues(id)
		return c
	}

	t.Run("invalid id", func(t *testing.T) {
		handler := NewAdminCompaniesHandler(service.NewCompaniesService(&stubCompaniesRepo{}))
		rec := httptest.NewRecorder()
		_ = handler.Update(newContext(rec, "nope", map[string]any{"city": "Umeå"}))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		handler := NewAdminCompaniesHandler(service.NewCompaniesService(&stubCompaniesRepo{
			update: func(ctx context.Context, id uuid.UUID, patch dto.UpdateCompanyRequest) (*entity.Company, error) {
				return nil, repository.ErrCompanyNotFound
			},
		}))
		rec := httptest.NewRecorder()
		_ = handler.Update(newContext(rec, companyID.String(), map[string]any{"city": "Umeå"}))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		handler := NewAdminCompaniesHandler(service.NewCompaniesService(&stubCompaniesRepo{
			update: func(ctx context.Context, id uuid.UUID, patch dto.UpdateCompanyRequest) (*entity.Company, error) {
				if id != companyID {
					t.Fatalf("expected id %s, got %s", companyID, id)
				}
				if patch.City == nil || *patch.City != "Umeå" {
					t.Fatalf("expected city patch, got %v", patch.City)
				}
				return &entity.Company{ID: id, Name: "Svets AB"}, nil
			},
		}))
		rec := httptest.NewRecorder()
		_ = handler.Update(newContext(rec, companyID.String(), map[string]any{"city": "Umeå"}))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}
