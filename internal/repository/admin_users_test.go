package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPGXAdminUsersRepository_FindByEmail(t *testing.T) {
	repo := &PGXAdminUsersRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error {
				created := time.Now()
				*dest[0].(*uuid.UUID) = uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
				*dest[1].(*string) = "admin@example.com"
				*dest[2].(*string) = "hashed"
				*dest[3].(*string) = "admin"
				*dest[4].(*bool) = true
				*dest[5].(*time.Time) = created
				*dest[6].(*time.Time) = created
				return nil
			}}
		},
	}}

	user, err := repo.FindByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "admin@example.com" || !user.IsSuperAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestPGXAdminUsersRepository_FindByEmail_NotFound(t *testing.T) {
	repo := &PGXAdminUsersRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}}
	if _, err := repo.FindByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPGXAdminUsersRepository_Create_DuplicateEmail(t *testing.T) {
	repo := &PGXAdminUsersRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			return &stubRow{scan: func(dest ...any) error {
				return &pgconn.PgError{Code: uniqueViolation, ConstraintName: "admin_users_email_key"}
			}}
		},
	}}
	if _, err := repo.Create(context.Background(), "dup@example.com", "hash", "admin", false); !errors.Is(err, ErrEmailDuplicate) {
		t.Fatalf("expected ErrEmailDuplicate, got %v", err)
	}
}

func TestPGXAdminUsersRepository_Update_QueryBuilding(t *testing.T) {
	email := "new@example.com"
	super := true
	var gotQuery string
	var gotArgs []any
	repo := &PGXAdminUsersRepository{pool: &stubPool{
		queryRowFunc: func(ctx context.Context, query string, args ...any) pgx.Row {
			gotQuery = query
			gotArgs = args
			return &stubRow{scan: func(dest ...any) error {
				created := time.Now()
				*dest[0].(*uuid.UUID) = uuid.New()
				*dest[1].(*string) = email
				*dest[2].(*string) = "hashed"
				*dest[3].(*string) = "admin"
				*dest[4].(*bool) = super
				*dest[5].(*time.Time) = created
				*dest[6].(*time.Time) = created
				return nil
			}}
		},
	}}

	if _, err := repo.Update(context.Background(), uuid.New(), &email, nil, nil, &super); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(gotQuery, "email = $1") || !strings.Contains(gotQuery, "is_super_admin = $2") {
		t.Fatalf("unexpected query: %s", gotQuery)
	}
	if !strings.Contains(gotQuery, "updated_at = NOW()") {
		t.Fatalf("expected updated_at clause: %s", gotQuery)
	}
	if len(gotArgs) != 3 {
		t.Fatalf("expected 3 args (email, super, id), got %d", len(gotArgs))
	}
}

func TestPGXAdminUsersRepository_Delete(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		repo := &PGXAdminUsersRepository{pool: &stubPool{
			execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}}
		if err := repo.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		repo := &PGXAdminUsersRepository{pool: &stubPool{
			execFunc: func(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}}
		if err := repo.Delete(context.Background(), uuid.New()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
