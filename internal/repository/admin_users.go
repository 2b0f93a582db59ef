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
	// ErrUserNotFound is returned when no admin user matches the lookup criteria.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailDuplicate indicates the email is already registered.
	ErrEmailDuplicate = errors.New("email already exists")
)

// AdminUsersRepository declares operations for back-office accounts.
type AdminUsersRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)
	Create(ctx context.Context, email, passwordHash, role string, superAdmin bool) (*entity.AdminUser, error)
	List(ctx context.Context) ([]entity.AdminUser, error)
	Update(ctx context.Context, id uuid.UUID, email, passwordHash, role *string, superAdmin *bool) (*entity.AdminUser, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const adminUserColumns = `id, email, password_hash, role, is_super_admin, created_at, updated_at`

// PGXAdminUsersRepository implements AdminUsersRepository with pgx.
type PGXAdminUsersRepository struct {
	pool pgxPool
}

// NewPGXAdminUsersRepository instantiates an admin users repository.
func NewPGXAdminUsersRepository(pool *pgxpool.Pool) *PGXAdminUsersRepository {
	return &PGXAdminUsersRepository{pool: pool}
}

// FindByEmail fetches an admin user by email if present.
func (r *PGXAdminUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE email = $1`, email)
	return scanAdminUser(row)
}

// FindByID retrieves an admin user by identifier.
func (r *PGXAdminUsersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+adminUserColumns+` FROM admin_users WHERE id = $1`, id)
	return scanAdminUser(row)
}

// Create inserts a new admin user row.
func (r *PGXAdminUsersRepository) Create(ctx context.Context, email, passwordHash, role string, superAdmin bool) (*entity.AdminUser, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO admin_users (email, password_hash, role, is_super_admin)
        VALUES ($1, $2, $3, $4)
        RETURNING `+adminUserColumns,
		email, passwordHash, role, superAdmin)

	user, err := scanAdminUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && strings.Contains(pgErr.ConstraintName, "email") {
			return nil, fmt.Errorf("%w: %v", ErrEmailDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert admin user: %w", err)
	}
	return user, nil
}

// List returns all admin users ordered by creation date (desc).
func (r *PGXAdminUsersRepository) List(ctx context.Context) ([]entity.AdminUser, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adminUserColumns+` FROM admin_users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list admin users: %w", err)
	}
	defer rows.Close()

	var users []entity.AdminUser
	for rows.Next() {
		user, err := scanAdminUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan admin user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admin users: %w", err)
	}
	return users, nil
}

// Update patches admin user attributes.
func (r *PGXAdminUsersRepository) Update(ctx context.Context, id uuid.UUID, email, passwordHash, role *string, superAdmin *bool) (*entity.AdminUser, error) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	idx := 1

	if email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", idx))
		args = append(args, *email)
		idx++
	}
	if passwordHash != nil {
		setClauses = append(setClauses, fmt.Sprintf("password_hash = $%d", idx))
		args = append(args, *passwordHash)
		idx++
	}
	if role != nil {
		setClauses = append(setClauses, fmt.Sprintf("role = $%d", idx))
		args = append(args, *role)
		idx++
	}
	if superAdmin != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_super_admin = $%d", idx))
		args = append(args, *superAdmin)
		idx++
	}

	if len(setClauses) == 0 {
		return r.FindByID(ctx, id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE admin_users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), idx, adminUserColumns)

	user, err := scanAdminUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && strings.Contains(pgErr.ConstraintName, "email") {
			return nil, fmt.Errorf("%w: %v", ErrEmailDuplicate, pgErr)
		}
		return nil, fmt.Errorf("update admin user: %w", err)
	}
	return user, nil
}

// Delete removes an admin user by id.
func (r *PGXAdminUsersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM admin_users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admin user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanAdminUser(row pgx.Row) (*entity.AdminUser, error) {
	var user entity.AdminUser
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role,
		&user.IsSuperAdmin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
