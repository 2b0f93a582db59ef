package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/industrikatalogen/api/internal/auth"
	"github.com/industrikatalogen/api/internal/repository"
)

// ErrInvalidCredentials is the single error surfaced for every failed login
// factor, so callers cannot probe which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// IdentityProvider abstracts the external identity provider used for the
// current admin sign-in path.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*ProviderIdentity, error)
}

// ProviderIdentity is the user metadata returned by the identity provider.
type ProviderIdentity struct {
	Email string
	Role  string
}

// AuthService coordinates admin credential validation and session issuance.
type AuthService struct {
	admins   repository.AdminUsersRepository
	jwt      *auth.JWTManager
	provider IdentityProvider
}

// NewAuthService constructs a new AuthService. The identity provider may be
// nil when only the legacy password path is configured.
func NewAuthService(admins repository.AdminUsersRepository, jwtManager *auth.JWTManager, provider IdentityProvider) *AuthService {
	return &AuthService{admins: admins, jwt: jwtManager, provider: provider}
}

// Login validates legacy email/password credentials and returns a session JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(user.ID.String(), user.Email, auth.RoleAdmin, "")
}

// LoginWithProvider authenticates against the external identity provider,
// maps the role metadata to the internal enum once, and issues the same
// session JWT the legacy path does. Non-admin identities are refused.
func (s *AuthService) LoginWithProvider(ctx context.Context, email, password string) (string, error) {
	if s.provider == nil {
		return "", errors.New("identity provider not configured")
	}
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	identity, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if auth.MapExternalRole(identity.Role) != auth.RoleAdmin {
		return "", ErrInvalidCredentials
	}

	// The reviewer identity recorded on claims must reference a local row.
	user, err := s.admins.FindByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	return s.jwt.GenerateToken(user.ID.String(), user.Email, auth.RoleAdmin, "")
}
