package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/entity"
	"github.com/industrikatalogen/api/internal/repository"
)

// CompaniesService exposes read/write operations for the directory.
type CompaniesService struct {
	repo repository.CompaniesRepository
}

// CSVValidationError indicates that the provided CSV payload is invalid.
type CSVValidationError struct {
	Message string
}

// Error implements the error interface.
func (e CSVValidationError) Error() string {
	return e.Message
}

// NewCompaniesService creates a new instance of CompaniesService.
func NewCompaniesService(repo repository.CompaniesRepository) *CompaniesService {
	return &CompaniesService{repo: repo}
}

// ListCompanies returns companies respecting pagination defaults.
func (s *CompaniesService) ListCompanies(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

// ListCompaniesAdmin mirrors ListCompanies with a wider page window for the
// back office.
func (s *CompaniesService) ListCompaniesAdmin(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

// GetBySlug returns a single company profile.
func (s *CompaniesService) GetBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, repository.ErrCompanyNotFound
	}
	return s.repo.FindBySlug(ctx, slug)
}

// Regions lists the distinct region values for filtering.
func (s *CompaniesService) Regions(ctx context.Context) ([]string, error) {
	return s.repo.Regions(ctx)
}

// Categories lists the distinct category tags for filtering.
func (s *CompaniesService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// CreateCompany adds a listing. The slug is derived from the name here and
// never changes afterwards.
func (s *CompaniesService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*entity.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("company name is required")
	}
	slug := Slugify(name)
	if slug == "" {
		return nil, errors.New("company name does not produce a usable slug")
	}

	company := &entity.Company{
		Slug:          slug,
		Name:          name,
		DescriptionSV: req.DescriptionSV,
		DescriptionEN: req.DescriptionEN,
		Categories:    req.Categories,
		ServiceAreas:  req.ServiceAreas,
		Specialties:   req.Specialties,
		Address:       req.Address,
		PostalCode:    req.PostalCode,
		City:          req.City,
		Region:        req.Region,
		Email:         req.Email,
		Phone:         req.Phone,
		Website:       req.Website,
		IsFeatured:    req.IsFeatured,
		IsVerified:    req.IsVerified,
	}
	return s.repo.Create(ctx, company)
}

// UpdateCompany patches mutable listing fields.
func (s *CompaniesService) UpdateCompany(ctx context.Context, id string, req dto.UpdateCompanyRequest) (*entity.Company, error) {
	companyID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.New("invalid company id")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, errors.New("company name cannot be empty")
	}
	return s.repo.Update(ctx, companyID, req)
}

// ImportCompaniesCSV ingests company data from a CSV reader.
func (s *CompaniesService) ImportCompaniesCSV(ctx context.Context, r io.Reader) (repository.BulkUpsertResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return repository.BulkUpsertResult{}, CSVValidationError{Message: "csv file is empty"}
		}
		return repository.BulkUpsertResult{}, fmt.Errorf("read csv header: %w", err)
	}

	indexMap, valErr := buildHeaderIndex(header)
	if valErr != nil {
		return repository.BulkUpsertResult{}, valErr
	}

	var records []repository.BulkUpsertCompanyInput

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return repository.BulkUpsertResult{}, fmt.Errorf("read csv row: %w", err)
		}

		record, ok := importRecordFromRow(func(column string) string {
			return row[indexMap[column]]
		})
		if !ok {
			continue
		}
		records = append(records, record)
	}

	return s.repo.BulkUpsert(ctx, records)
}

// ImportRows ingests company rows from any tabular source keyed by the
// required column order (name, description_sv, description_en, categories,
// service_areas, specialties, address, postal_code, city, region, email,
// phone, website). Used by the spreadsheet import path.
func (s *CompaniesService) ImportRows(ctx context.Context, rows [][]string) (repository.BulkUpsertResult, error) {
	var records []repository.BulkUpsertCompanyInput
	for _, row := range rows {
		cell := func(i int) string {
			if i < len(row) {
				return row[i]
			}
			return ""
		}
		record, ok := importRecordFromRow(func(column string) string {
			idx, found := importColumnIndex[column]
			if !found {
				return ""
			}
			return cell(idx)
		})
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return s.repo.BulkUpsert(ctx, records)
}

var requiredCSVHeaders = []string{
	"name", "description_sv", "description_en", "categories",
	"service_areas", "specialties", "address", "postal_code",
	"city", "region", "email", "phone", "website",
}

var importColumnIndex = func() map[string]int {
	index := make(map[string]int, len(requiredCSVHeaders))
	for i, col := range requiredCSVHeaders {
		index[col] = i
	}
	return index
}()

func importRecordFromRow(cell func(column string) string) (repository.BulkUpsertCompanyInput, bool) {
	name := strings.TrimSpace(cell("name"))
	if name == "" {
		return repository.BulkUpsertCompanyInput{}, false
	}
	slug := Slugify(name)
	if slug == "" {
		return repository.BulkUpsertCompanyInput{}, false
	}

	return repository.BulkUpsertCompanyInput{
		Slug:          slug,
		Name:          name,
		DescriptionSV: normalizeString(cell("description_sv")),
		DescriptionEN: normalizeString(cell("description_en")),
		Categories:    splitTags(cell("categories")),
		ServiceAreas:  splitTags(cell("service_areas")),
		Specialties:   splitTags(cell("specialties")),
		Address:       normalizeString(cell("address")),
		PostalCode:    normalizeString(cell("postal_code")),
		City:          normalizeString(cell("city")),
		Region:        normalizeString(cell("region")),
		Email:         normalizeString(cell("email")),
		Phone:         normalizeString(cell("phone")),
		Website:       normalizeString(cell("website")),
	}, true
}

func buildHeaderIndex(header []string) (map[string]int, error) {
	index := make(map[string]int)
	for i, col := range header {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}

	missing := make([]string, 0)
	for _, required := range requiredCSVHeaders {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, CSVValidationError{Message: fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", "))}
	}
	return index, nil
}

// splitTags turns a "|"-separated cell into trimmed tags.
func splitTags(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, "|")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
