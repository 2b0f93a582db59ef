package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/entity"
)

var (
	// ErrCompanyNotFound is returned when no company matches the lookup criteria.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrSlugDuplicate indicates the derived slug is already taken.
	ErrSlugDuplicate = errors.New("slug already exists")
)

// CompaniesRepository describes persistence operations for companies.
type CompaniesRepository interface {
	Create(ctx context.Context, company *entity.Company) (*entity.Company, error)
	Update(ctx context.Context, id uuid.UUID, patch dto.UpdateCompanyRequest) (*entity.Company, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Company, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error)
	Regions(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
	BulkUpsert(ctx context.Context, records []BulkUpsertCompanyInput) (BulkUpsertResult, error)
}

// BulkUpsertCompanyInput represents the fields accepted by the import paths.
type BulkUpsertCompanyInput struct {
	Slug          string
	Name          string
	DescriptionSV *string
	DescriptionEN *string
	Categories    []string
	ServiceAreas  []string
	Specialties   []string
	Address       *string
	PostalCode    *string
	City          *string
	Region        *string
	Email         *string
	Phone         *string
	Website       *string
}

// BulkUpsertResult summarises the number of rows inserted or updated.
type BulkUpsertResult struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Total    int `json:"total"`
}

const companyColumns = `
            id,
            slug,
            name,
            description_sv,
            description_en,
            categories,
            service_areas,
            specialties,
            address,
            postal_code,
            city,
            region,
            email,
            phone,
            website,
            is_featured,
            is_verified,
            created_at,
            updated_at`

// PGXCompaniesRepository implements CompaniesRepository using pgx.
type PGXCompaniesRepository struct {
	pool pgxPool
}

// NewPGXCompaniesRepository wires a pgx backed repository.
func NewPGXCompaniesRepository(pool *pgxpool.Pool) *PGXCompaniesRepository {
	return &PGXCompaniesRepository{pool: pool}
}

// Create inserts a new company. The slug must already be derived and is
// immutable afterwards.
func (r *PGXCompaniesRepository) Create(ctx context.Context, company *entity.Company) (*entity.Company, error) {
	if company == nil {
		return nil, fmt.Errorf("company payload is nil")
	}

	query := `
        INSERT INTO companies (
            slug, name, description_sv, description_en, categories,
            service_areas, specialties, address, postal_code, city, region,
            email, phone, website, is_featured, is_verified
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING` + companyColumns

	row := r.pool.QueryRow(ctx, query,
		company.Slug,
		company.Name,
		company.DescriptionSV,
		company.DescriptionEN,
		textArray(company.Categories),
		textArray(company.ServiceAreas),
		textArray(company.Specialties),
		company.Address,
		company.PostalCode,
		company.City,
		company.Region,
		company.Email,
		company.Phone,
		company.Website,
		company.IsFeatured,
		company.IsVerified,
	)

	created, err := scanCompany(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && strings.Contains(pgErr.ConstraintName, "slug") {
			return nil, fmt.Errorf("%w: %v", ErrSlugDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return created, nil
}

// Update patches company attributes. The slug is never touched.
func (r *PGXCompaniesRepository) Update(ctx context.Context, id uuid.UUID, patch dto.UpdateCompanyRequest) (*entity.Company, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	addSet := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.DescriptionSV != nil {
		addSet("description_sv", *patch.DescriptionSV)
	}
	if patch.DescriptionEN != nil {
		addSet("description_en", *patch.DescriptionEN)
	}
	if patch.Categories != nil {
		addSet("categories", textArray(*patch.Categories))
	}
	if patch.ServiceAreas != nil {
		addSet("service_areas", textArray(*patch.ServiceAreas))
	}
	if patch.Specialties != nil {
		addSet("specialties", textArray(*patch.Specialties))
	}
	if patch.Address != nil {
		addSet("address", *patch.Address)
	}
	if patch.PostalCode != nil {
		addSet("postal_code", *patch.PostalCode)
	}
	if patch.City != nil {
		addSet("city", *patch.City)
	}
	if patch.Region != nil {
		addSet("region", *patch.Region)
	}
	if patch.Email != nil {
		addSet("email", *patch.Email)
	}
	if patch.Phone != nil {
		addSet("phone", *patch.Phone)
	}
	if patch.Website != nil {
		addSet("website", *patch.Website)
	}
	if patch.IsFeatured != nil {
		addSet("is_featured", *patch.IsFeatured)
	}
	if patch.IsVerified != nil {
		addSet("is_verified", *patch.IsVerified)
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE id = $%d RETURNING%s`,
		strings.Join(setClauses, ", "), idx, companyColumns)

	company, err := scanCompany(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}

// FindBySlug fetches a company by its public identifier.
func (r *PGXCompaniesRepository) FindBySlug(ctx context.Context, slug string) (*entity.Company, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+companyColumns+` FROM companies WHERE slug = $1`, slug)
	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("query company by slug: %w", err)
	}
	return company, nil
}

// FindByID retrieves a company by identifier.
func (r *PGXCompaniesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Company, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+companyColumns+` FROM companies WHERE id = $1`, id)
	company, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("query company by id: %w", err)
	}
	return company, nil
}

// List retrieves companies matching the provided filter.
func (r *PGXCompaniesRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Company, error) {
	baseQuery := strings.Builder{}
	baseQuery.WriteString(`SELECT` + companyColumns + ` FROM companies`)

	var (
		clauses []string
		args    []any
		idx     = 1
	)

	if filter.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", filter.Search)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR description_sv ILIKE $%d OR description_en ILIKE $%d)", idx, idx+1, idx+2))
		args = append(args, pattern, pattern, pattern)
		idx += 3
	}
	if filter.Region != "" {
		clauses = append(clauses, fmt.Sprintf("region = $%d", idx))
		args = append(args, filter.Region)
		idx++
	}
	if len(filter.Categories) > 0 {
		clauses = append(clauses, fmt.Sprintf("categories @> $%d", idx))
		args = append(args, textArray(filter.Categories))
		idx++
	}

	if len(clauses) > 0 {
		baseQuery.WriteString(" WHERE ")
		baseQuery.WriteString(strings.Join(clauses, " AND "))
	}

	baseQuery.WriteString(" ORDER BY ")
	baseQuery.WriteString(orderClause(filter.Sort))

	baseQuery.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, baseQuery.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	return scanCompanies(rows)
}

// Regions returns the distinct non-empty region values.
func (r *PGXCompaniesRepository) Regions(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, `SELECT DISTINCT region FROM companies WHERE region IS NOT NULL AND region <> '' ORDER BY region`)
}

// Categories returns the distinct category tags across all companies.
func (r *PGXCompaniesRepository) Categories(ctx context.Context) ([]string, error) {
	return r.distinctValues(ctx, `SELECT DISTINCT unnest(categories) AS category FROM companies ORDER BY category`)
}

func (r *PGXCompaniesRepository) distinctValues(ctx context.Context, query string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query distinct values: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("scan distinct value: %w", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate distinct values: %w", err)
	}
	return values, nil
}

const bulkUpsertSQL = `
        INSERT INTO companies (
            slug, name, description_sv, description_en, categories,
            service_areas, specialties, address, postal_code, city, region,
            email, phone, website
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
        ON CONFLICT (slug) DO UPDATE SET
            name = EXCLUDED.name,
            description_sv = COALESCE(EXCLUDED.description_sv, companies.description_sv),
            description_en = COALESCE(EXCLUDED.description_en, companies.description_en),
            categories = EXCLUDED.categories,
            service_areas = EXCLUDED.service_areas,
            specialties = EXCLUDED.specialties,
            address = COALESCE(EXCLUDED.address, companies.address),
            postal_code = COALESCE(EXCLUDED.postal_code, companies.postal_code),
            city = COALESCE(EXCLUDED.city, companies.city),
            region = COALESCE(EXCLUDED.region, companies.region),
            email = COALESCE(EXCLUDED.email, companies.email),
            phone = COALESCE(EXCLUDED.phone, companies.phone),
            website = COALESCE(EXCLUDED.website, companies.website),
            updated_at = NOW()
        RETURNING xmax = 0;
    `

// BulkUpsert persists a batch of imported companies keyed by slug.
func (r *PGXCompaniesRepository) BulkUpsert(ctx context.Context, records []BulkUpsertCompanyInput) (BulkUpsertResult, error) {
	var result BulkUpsertResult
	if len(records) == 0 {
		return result, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return result, fmt.Errorf("start bulk upsert tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, record := range records {
		rows, err := tx.Query(ctx, bulkUpsertSQL,
			record.Slug,
			record.Name,
			record.DescriptionSV,
			record.DescriptionEN,
			textArray(record.Categories),
			textArray(record.ServiceAreas),
			textArray(record.Specialties),
			record.Address,
			record.PostalCode,
			record.City,
			record.Region,
			record.Email,
			record.Phone,
			record.Website,
		)
		if err != nil {
			return result, fmt.Errorf("bulk upsert company %q: %w", record.Slug, err)
		}

		var inserted bool
		if rows.Next() {
			if scanErr := rows.Scan(&inserted); scanErr != nil {
				rows.Close()
				return result, fmt.Errorf("scan bulk upsert result: %w", scanErr)
			}
		} else {
			err := rows.Err()
			rows.Close()
			if err != nil {
				return result, fmt.Errorf("bulk upsert company %q: %w", record.Slug, err)
			}
			return result, fmt.Errorf("bulk upsert company %q: no result returned", record.Slug)
		}
		rows.Close()

		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
		result.Total++
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("commit bulk upsert tx: %w", err)
	}

	return result, nil
}

func orderClause(sort string) string {
	switch strings.ToLower(sort) {
	case "name_desc":
		return "name DESC"
	case "newest":
		return "created_at DESC, name ASC"
	default:
		// name_asc; "relevance" is accepted as an alias with no scoring
		// behind it.
		return "name ASC"
	}
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID,
		&c.Slug,
		&c.Name,
		&c.DescriptionSV,
		&c.DescriptionEN,
		&c.Categories,
		&c.ServiceAreas,
		&c.Specialties,
		&c.Address,
		&c.PostalCode,
		&c.City,
		&c.Region,
		&c.Email,
		&c.Phone,
		&c.Website,
		&c.IsFeatured,
		&c.IsVerified,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.Categories == nil {
		c.Categories = []string{}
	}
	if c.ServiceAreas == nil {
		c.ServiceAreas = []string{}
	}
	if c.Specialties == nil {
		c.Specialties = []string{}
	}
	return &c, nil
}

func scanCompanies(rows pgx.Rows) ([]entity.Company, error) {
	var companies []entity.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, *company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return companies, nil
}

func textArray(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
