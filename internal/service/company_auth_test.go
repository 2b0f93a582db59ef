package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/industrikatalogen/api/internal/entity"
	"github.com/industrikatalogen/api/internal/repository"
)

type mockCompanyUsersRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.CompanyUser, error)
	findByToken func(ctx context.Context, accessToken string) (*entity.CompanyUser, error)
	deactivate  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCompanyUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.CompanyUser, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("FindByEmail not implemented")
}

func (m *mockCompanyUsersRepository) FindByToken(ctx context.Context, accessToken string) (*entity.CompanyUser, error) {
	if m.findByToken != nil {
		return m.findByToken(ctx, accessToken)
	}
	return nil, errors.New("FindByToken not implemented")
}

func (m *mockCompanyUsersRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	if m.deactivate != nil {
		return m.deactivate(ctx, id)
	}
	return errors.New("Deactivate not implemented")
}

func TestCompanyAuthService_Login(t *testing.T) {
	activeUser := &entity.CompanyUser{
		ID:          uuid.New(),
		CompanyID:   uuid.New(),
		Email:       "anna@svets.se",
		AccessToken: "valid-token",
		Active:      true,
	}

	tests := map[string]struct {
		email     string
		token     string
		repo      repository.CompanyUsersRepository
		expectErr error
	}{
		"empty email": {
			token:     "valid-token",
			repo:      &mockCompanyUsersRepository{},
			expectErr: ErrInvalidCredentials,
		},
		"empty token": {
			email:     "anna@svets.se",
			repo:      &mockCompanyUsersRepository{},
			expectErr: ErrInvalidCredentials,
		},
		"unknown email": {
			email: "nobody@svets.se",
			token: "valid-token",
			repo: &mockCompanyUsersRepository{
				findByEmail: func(ctx context.Context, email string) (*entity.CompanyUser, error) {
					return nil, repository.ErrCompanyUserNotFound
				},
			},
			expectErr: ErrInvalidCredentials,
		},
		"inactive account": {
			email: "anna@svets.se",
			token: "valid-token",
			repo: &mockCompanyUsersRepository{
				findByEmail: func(ctx context.Context, email string) (*entity.CompanyUser, error) {
					inactive := *activeUser
					inactive.Active = false
					return &inactive, nil
				},
			},
			expectErr: ErrInvalidCredentials,
		},
		"token mismatch": {
			email: "anna@svets.se",
			token: "wrong-token",
			repo: &mockCompanyUsersRepository{
				findByEmail: func(ctx context.Context, email string) (*entity.CompanyUser, error) {
					return activeUser, nil
				},
			},
			expectErr: ErrInvalidCredentials,
		},
		"success with email case folding": {
			email: "  Anna@Svets.SE ",
			token: "valid-token",
			repo: &mockCompanyUsersRepository{
				findByEmail: func(ctx context.Context, email string) (*entity.CompanyUser, error) {
					if email != "anna@svets.se" {
						t.Fatalf("expected lowercased email, got %q", email)
					}
					return activeUser, nil
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			service := NewCompanyAuthService(tt.repo)
			user, err := service.Login(context.Background(), tt.email, tt.token)
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected error %v, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != activeUser.ID {
				t.Fatalf("unexpected user returned")
			}
		})
	}
}

func TestCompanyAuthService_Revoke(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		service := NewCompanyAuthService(&mockCompanyUsersRepository{})
		if err := service.Revoke(context.Background(), "not-a-uuid"); err == nil {
			t.Fatalf("expected error for malformed id")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		service := NewCompanyAuthService(&mockCompanyUsersRepository{
			deactivate: func(ctx context.Context, id uuid.UUID) error {
				return repository.ErrCompanyUserNotFound
			},
		})
		err := service.Revoke(context.Background(), uuid.NewString())
		if !errors.Is(err, repository.ErrCompanyUserNotFound) {
			t.Fatalf("expected ErrCompanyUserNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		target := uuid.New()
		service := NewCompanyAuthService(&mockCompanyUsersRepository{
			deactivate: func(ctx context.Context, id uuid.UUID) error {
				if id != target {
					t.Fatalf("expected id %s, got %s", target, id)
				}
				return nil
			},
		})
		if err := service.Revoke(context.Background(), target.String()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCompanyAuthService_Verify(t *testing.T) {
	activeUser := &entity.CompanyUser{ID: uuid.New(), AccessToken: "valid-token", Active: true}

	t.Run("empty token", func(t *testing.T) {
		service := NewCompanyAuthService(&mockCompanyUsersRepository{})
		if _, err := service.Verify(context.Background(), "  "); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		service := NewCompanyAuthService(&mockCompanyUsersRepository{
			findByToken: func(ctx context.Context, token string) (*entity.CompanyUser, error) {
				return nil, repository.ErrCompanyUserNotFound
			},
		})
		if _, err := service.Verify(context.Background(), "bogus"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive account", func(t *testing.T) {
		service := NewCompanyAuthService(&mockCompanyUsersRepository{
			findByToken: func(ctx context.Context, token string) (*entity.CompanyUser, error) {
				inactive := *activeUser
				inactive.Active = false
				return &inactive, nil
			},
		})
		if _, err := service.Verify(context.Background(), "valid-token"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		service := NewCompanyAuthService(&mockCompanyUsersRepository{
			findByToken: func(ctx context.Context, token string) (*entity.CompanyUser, error) {
				if token != "valid-token" {
					t.Fatalf("unexpected token lookup %q", token)
				}
				return activeUser, nil
			},
		})
		user, err := service.Verify(context.Background(), " valid-token ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != activeUser.ID {
			t.Fatalf("unexpected user returned")
		}
	})
}
