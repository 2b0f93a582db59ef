package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/industrikatalogen/api/internal/entity"
)

// QuotesRepository declares persistence operations for quote requests.
// Records are write-once; there is no update path.
type QuotesRepository interface {
	Create(ctx context.Context, quote *entity.QuoteRequest) (*entity.QuoteRequest, error)
	List(ctx context.Context, companyID *uuid.UUID, limit, offset int) ([]entity.QuoteRequest, error)
}

const quoteColumns = `id, company_id, name, email, phone, service_description, urgency, preferred_contact, attachments, created_at`

// PGXQuotesRepository implements QuotesRepository with pgx.
type PGXQuotesRepository struct {
	pool pgxPool
}

// NewPGXQuotesRepository instantiates a quotes repository.
func NewPGXQuotesRepository(pool *pgxpool.Pool) *PGXQuotesRepository {
	return &PGXQuotesRepository{pool: pool}
}

// Create inserts a quote request.
func (r *PGXQuotesRepository) Create(ctx context.Context, quote *entity.QuoteRequest) (*entity.QuoteRequest, error) {
	if quote == nil {
		return nil, fmt.Errorf("quote payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO quote_requests (company_id, name, email, phone, service_description, urgency, preferred_contact, attachments)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING `+quoteColumns,
		quote.CompanyID, quote.Name, quote.Email, quote.Phone, quote.ServiceDescription,
		quote.Urgency, quote.PreferredContact, textArray(quote.Attachments))

	created, err := scanQuote(row)
	if err != nil {
		return nil, fmt.Errorf("insert quote request: %w", err)
	}
	return created, nil
}

// List returns quote requests newest first, optionally scoped to a company.
func (r *PGXQuotesRepository) List(ctx context.Context, companyID *uuid.UUID, limit, offset int) ([]entity.QuoteRequest, error) {
	query := `SELECT ` + quoteColumns + ` FROM quote_requests`
	args := []any{}
	idx := 1
	if companyID != nil {
		query += fmt.Sprintf(` WHERE company_id = $%d`, idx)
		args = append(args, *companyID)
		idx++
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quote requests: %w", err)
	}
	defer rows.Close()

	var quotes []entity.QuoteRequest
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote request: %w", err)
		}
		quotes = append(quotes, *quote)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quote requests: %w", err)
	}
	return quotes, nil
}

func scanQuote(row pgx.Row) (*entity.QuoteRequest, error) {
	var q entity.QuoteRequest
	err := row.Scan(&q.ID, &q.CompanyID, &q.Name, &q.Email, &q.Phone,
		&q.ServiceDescription, &q.Urgency, &q.PreferredContact, &q.Attachments, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	if q.Attachments == nil {
		q.Attachments = []string{}
	}
	return &q, nil
}
