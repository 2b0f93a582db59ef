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

	"github.com/industrikatalogen/api/internal/entity"
)

var (
	// ErrClaimNotFound is returned when no claim matches the lookup criteria.
	ErrClaimNotFound = errors.New("claim not found")
	// ErrClaimAlreadyReviewed indicates the claim already left the pending state.
	ErrClaimAlreadyReviewed = errors.New("claim already reviewed")
	// ErrCompanyAlreadyClaimed indicates the company already has an active company user.
	ErrCompanyAlreadyClaimed = errors.New("company already has an active user")
	// ErrCompanyUserEmailDuplicate indicates the claimant email is already bound to a company user.
	ErrCompanyUserEmailDuplicate = errors.New("company user email already exists")
)

// ClaimsRepository describes persistence operations for ownership claims.
type ClaimsRepository interface {
	Create(ctx context.Context, claim *entity.ClaimRequest) (*entity.ClaimRequest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ClaimRequest, error)
	List(ctx context.Context, status string) ([]entity.ClaimRequest, error)
	Approve(ctx context.Context, claimID, reviewerID uuid.UUID, accessToken string) (*entity.CompanyUser, error)
	Reject(ctx context.Context, claimID, reviewerID uuid.UUID, notes *string) error
}

const claimColumns = `
            id,
            company_id,
            name,
            email,
            phone,
            relationship,
            consent,
            status,
            submitted_at,
            reviewed_at,
            reviewed_by,
            review_notes`

// PGXClaimsRepository implements ClaimsRepository using pgx.
type PGXClaimsRepository struct {
	pool pgxPool
}

// NewPGXClaimsRepository wires a pgx backed repository.
func NewPGXClaimsRepository(pool *pgxpool.Pool) *PGXClaimsRepository {
	return &PGXClaimsRepository{pool: pool}
}

// Create inserts a pending claim.
func (r *PGXClaimsRepository) Create(ctx context.Context, claim *entity.ClaimRequest) (*entity.ClaimRequest, error) {
	if claim == nil {
		return nil, fmt.Errorf("claim payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO claim_requests (company_id, name, email, phone, relationship, consent, status)
        VALUES ($1, $2, $3, $4, $5, $6, 'pending')
        RETURNING`+claimColumns,
		claim.CompanyID, claim.Name, claim.Email, claim.Phone, claim.Relationship, claim.Consent)

	created, err := scanClaim(row)
	if err != nil {
		return nil, fmt.Errorf("insert claim: %w", err)
	}
	return created, nil
}

// FindByID retrieves a claim by identifier.
func (r *PGXClaimsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClaimRequest, error) {
	row := r.pool.QueryRow(ctx, `SELECT`+claimColumns+` FROM claim_requests WHERE id = $1`, id)
	claim, err := scanClaim(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClaimNotFound
		}
		return nil, fmt.Errorf("query claim by id: %w", err)
	}
	return claim, nil
}

// List returns claims ordered by submission date, optionally filtered by status.
func (r *PGXClaimsRepository) List(ctx context.Context, status string) ([]entity.ClaimRequest, error) {
	query := `SELECT` + claimColumns + ` FROM claim_requests`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	var claims []entity.ClaimRequest
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scan claim: %w", err)
		}
		claims = append(claims, *claim)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate claims: %w", err)
	}
	return claims, nil
}

// Approve transitions a pending claim to approved and issues the company
// user credential in a single transaction, so a claim is never marked
// approved without a matching login record or vice versa.
func (r *PGXClaimsRepository) Approve(ctx context.Context, claimID, reviewerID uuid.UUID, accessToken string) (*entity.CompanyUser, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("start approval tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		companyID uuid.UUID
		name      string
		email     string
		status    string
	)
	err = tx.QueryRow(ctx, `
        SELECT company_id, name, email, status
        FROM claim_requests
        WHERE id = $1
        FOR UPDATE
    `, claimID).Scan(&companyID, &name, &email, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClaimNotFound
		}
		return nil, fmt.Errorf("lock claim: %w", err)
	}
	if status != entity.ClaimStatusPending {
		return nil, ErrClaimAlreadyReviewed
	}

	var claimed bool
	err = tx.QueryRow(ctx, `
        SELECT EXISTS(SELECT 1 FROM company_users WHERE company_id = $1 AND active)
    `, companyID).Scan(&claimed)
	if err != nil {
		return nil, fmt.Errorf("check existing company user: %w", err)
	}
	if claimed {
		return nil, ErrCompanyAlreadyClaimed
	}

	row := tx.QueryRow(ctx, `
        INSERT INTO company_users (company_id, email, name, role, access_token, active, approved_by)
        VALUES ($1, $2, $3, 'owner', $4, TRUE, $5)
        RETURNING id, company_id, email, name, role, access_token, active, approved_by, created_at
    `, companyID, email, name, accessToken, reviewerID)

	var user entity.CompanyUser
	if err := row.Scan(&user.ID, &user.CompanyID, &user.Email, &user.Name, &user.Role,
		&user.AccessToken, &user.Active, &user.ApprovedBy, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, fmt.Errorf("%w: %v", ErrCompanyUserEmailDuplicate, pgErr)
			}
			if strings.Contains(pgErr.ConstraintName, "company_id") {
				return nil, fmt.Errorf("%w: %v", ErrCompanyAlreadyClaimed, pgErr)
			}
		}
		return nil, fmt.Errorf("insert company user: %w", err)
	}

	cmd, err := tx.Exec(ctx, `
        UPDATE claim_requests
        SET status = 'approved', reviewed_at = NOW(), reviewed_by = $2
        WHERE id = $1 AND status = 'pending'
    `, claimID, reviewerID)
	if err != nil {
		return nil, fmt.Errorf("mark claim approved: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, ErrClaimAlreadyReviewed
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit approval tx: %w", err)
	}

	return &user, nil
}

// Reject transitions a pending claim to rejected. No company user is created.
func (r *PGXClaimsRepository) Reject(ctx context.Context, claimID, reviewerID uuid.UUID, notes *string) error {
	cmd, err := r.pool.Exec(ctx, `
        UPDATE claim_requests
        SET status = 'rejected', reviewed_at = NOW(), reviewed_by = $2, review_notes = $3
        WHERE id = $1 AND status = 'pending'
    `, claimID, reviewerID, notes)
	if err != nil {
		return fmt.Errorf("mark claim rejected: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		// Either the claim does not exist or it already left pending.
		var status string
		err := r.pool.QueryRow(ctx, `SELECT status FROM claim_requests WHERE id = $1`, claimID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrClaimNotFound
			}
			return fmt.Errorf("check claim status: %w", err)
		}
		return ErrClaimAlreadyReviewed
	}
	return nil
}

func scanClaim(row pgx.Row) (*entity.ClaimRequest, error) {
	var c entity.ClaimRequest
	err := row.Scan(
		&c.ID,
		&c.CompanyID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Relationship,
		&c.Consent,
		&c.Status,
		&c.SubmittedAt,
		&c.ReviewedAt,
		&c.ReviewedBy,
		&c.ReviewNotes,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
