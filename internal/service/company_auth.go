package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/industrikatalogen/api/internal/entity"
	"github.com/industrikatalogen/api/internal/repository"
)

// CompanyAuthService implements the legacy token-based company login. The
// opaque access token issued at claim approval is the sole credential.
type CompanyAuthService struct {
	users repository.CompanyUsersRepository
}

// NewCompanyAuthService constructs a CompanyAuthService.
func NewCompanyAuthService(users repository.CompanyUsersRepository) *CompanyAuthService {
	return &CompanyAuthService{users: users}
}

// Login verifies the email/token pair. Unknown email, inactive account and
// token mismatch all fail with the same generic error.
func (s *CompanyAuthService) Login(ctx context.Context, email, accessToken string) (*entity.CompanyUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	accessToken = strings.TrimSpace(accessToken)
	if email == "" || accessToken == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		return nil, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(user.AccessToken), []byte(accessToken)) != 1 {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Revoke deactivates a company credential. The row is kept for audit; a new
// credential requires a fresh claim approval.
func (s *CompanyAuthService) Revoke(ctx context.Context, id string) error {
	userID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return errors.New("invalid company user id")
	}
	return s.users.Deactivate(ctx, userID)
}

// Verify resolves a bearer access token to its active company user.
func (s *CompanyAuthService) Verify(ctx context.Context, accessToken string) (*entity.CompanyUser, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByToken(ctx, accessToken)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
