package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/entity"
	"github.com/industrikatalogen/api/internal/repository"
	"github.com/industrikatalogen/api/internal/service"
)

func TestCompaniesHandler_List(t *testing.T) {
	e := newTestEcho()

	t.Run("filters parsed from query", func(t *testing.T) {
		repo := &stubCompaniesRepo{
			list: func(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error) {
				if filter.Search != "svets" || filter.Region != "Västerbotten" {
					t.Fatalf("unexpected filter: %+v", filter)
				}
				if len(filter.Categories) != 2 || filter.Categories[0] != "Svets" || filter.Categories[1] != "Smide" {
					t.Fatalf("unexpected categories: %v", filter.Categories)
				}
				if filter.Limit != 10 || filter.Offset != 20 {
					t.Fatalf("unexpected pagination: %+v", filter)
				}
				return []entity.Company{{Name: "Svets AB"}}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/api/companies?search=svets&region=V%C3%A4sterbotten&categories=Svets,Smide&limit=10&offset=20", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = NewCompaniesHandler(service.NewCompaniesService(repo)).List(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &stubCompaniesRepo{
			list: func(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error) {
				return nil, context.DeadlineExceeded
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		_ = NewCompaniesHandler(service.NewCompaniesService(repo)).List(c)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestCompaniesHandler_Get(t *testing.T) {
	e := newTestEcho()

	t.Run("not found", func(t *testing.T) {
		repo := &stubCompaniesRepo{
			findBySlug: func(ctx context.Context, slug string) (*entity.Company, error) {
				return nil, repository.ErrCompanyNotFound
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/api/companies/missing", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("slug")
		c.SetParamValues("missing")

		_ = NewCompaniesHandler(service.NewCompaniesService(repo)).Get(c)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		repo := &stubCompaniesRepo{
			findBySlug: func(ctx context.Context, slug string) (*entity.Company, error) {
				return &entity.Company{Slug: slug, Name: "Svets AB"}, nil
			},
		}
		req := httptest.NewRequest(http.MethodGet, "/api/companies/svets-ab", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("slug")
		c.SetParamValues("svets-ab")

		_ = NewCompaniesHandler(service.NewCompaniesService(repo)).Get(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})
}

func TestCompaniesHandler_Facets(t *testing.T) {
	e := newTestEcho()
	repo := &stubCompaniesRepo{
		regions:    func(ctx context.Context) ([]string, error) { return []string{"Norrbotten", "Västerbotten"}, nil },
		categories: func(ctx context.Context) ([]string, error) { return []string{"Smide", "Svets"}, nil },
	}
	handler := NewCompaniesHandler(service.NewCompaniesService(repo))

	rec := httptest.NewRecorder()
	_ = handler.Regions(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/regions", nil), rec))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for regions, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	_ = handler.Categories(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/categories", nil), rec))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for categories, got %d", rec.Code)
	}
}

func TestParseIntDefault(t *testing.T) {
	if parseIntDefault("", 20) != 20 {
		t.Fatalf("expected fallback for empty input")
	}
	if parseIntDefault("15", 20) != 15 {
		t.Fatalf("expected parsed value")
	}
	if parseIntDefault("abc", 20) != 20 {
		t.Fatalf("expected fallback for garbage input")
	}
}
