package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/industrikatalogen/api/internal/entity"
)

// ErrCompanyUserNotFound is returned when no company user matches the lookup criteria.
var ErrCompanyUserNotFound = errors.New("company user not found")

// CompanyUsersRepository declares operations for company login credentials.
// Rows are created only by claim approval; the only mutation is deactivation.
type CompanyUsersRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.CompanyUser, error)
	FindByToken(ctx context.Context, accessToken string) (*entity.CompanyUser, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

const companyUserColumns = `id, company_id, email, name, role, access_token, active, approved_by, created_at`

// PGXCompanyUsersRepository implements CompanyUsersRepository with pgx.
type PGXCompanyUsersRepository struct {
	pool pgxPool
}

// NewPGXCompanyUsersRepository instantiates a company users repository.
func NewPGXCompanyUsersRepository(pool *pgxpool.Pool) *PGXCompanyUsersRepository {
	return &PGXCompanyUsersRepository{pool: pool}
}

// FindByEmail fetches a company user by email if present.
func (r *PGXCompanyUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.CompanyUser, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+companyUserColumns+` FROM company_users WHERE email = $1`, email)
	return scanCompanyUser(row)
}

// FindByToken fetches a company user by access token if present.
func (r *PGXCompanyUsersRepository) FindByToken(ctx context.Context, accessToken string) (*entity.CompanyUser, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+companyUserColumns+` FROM company_users WHERE access_token = $1`, accessToken)
	return scanCompanyUser(row)
}

// Deactivate revokes the credential without deleting the audit trail.
func (r *PGXCompanyUsersRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE company_users SET active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate company user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrCompanyUserNotFound
	}
	return nil
}

func scanCompanyUser(row pgx.Row) (*entity.CompanyUser, error) {
	var user entity.CompanyUser
	err := row.Scan(&user.ID, &user.CompanyID, &user.Email, &user.Name, &user.Role,
		&user.AccessToken, &user.Active, &user.ApprovedBy, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyUserNotFound
		}
		return nil, fmt.Errorf("scan company user: %w", err)
	}
	return &user, nil
}
