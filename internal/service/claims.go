package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/entity"
	"github.com/industrikatalogen/api/internal/repository"
)

var (
	// ErrConsentRequired indicates the claimant did not affirm consent.
	ErrConsentRequired = errors.New("consent must be affirmed")
	// ErrNameRequired indicates the claimant name was empty.
	ErrNameRequired = errors.New("name is required")
	// ErrRelationshipRequired indicates the relationship description was empty.
	ErrRelationshipRequired = errors.New("relationship description is required")
	// ErrInvalidClaimID indicates the claim reference could not be parsed.
	ErrInvalidClaimID = errors.New("invalid claim id")
)

// ClaimsService coordinates claim submission and the admin review state
// machine: pending moves exactly once to approved or rejected.
type ClaimsService struct {
	claims    repository.ClaimsRepository
	companies repository.CompaniesRepository
}

// NewClaimsService constructs a ClaimsService.
func NewClaimsService(claims repository.ClaimsRepository, companies repository.CompaniesRepository) *ClaimsService {
	return &ClaimsService{claims: claims, companies: companies}
}

// Submit validates and persists a new pending claim. Duplicate submissions
// are not deduplicated; each creates its own pending claim.
func (s *ClaimsService) Submit(ctx context.Context, req dto.CreateClaimRequest) (*entity.ClaimRequest, error) {
	if !req.Consent {
		return nil, ErrConsentRequired
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Relationship) == "" {
		return nil, ErrRelationshipRequired
	}

	email, err := NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	var phone *string
	if req.Phone != nil {
		if normalized := NormalizePhone(*req.Phone, defaultPhoneRegion); normalized != "" {
			phone = &normalized
		}
	}

	company, err := s.companies.FindBySlug(ctx, strings.TrimSpace(req.CompanySlug))
	if err != nil {
		return nil, err
	}

	claim := &entity.ClaimRequest{
		CompanyID:    company.ID,
		Name:         name,
		Email:        email,
		Phone:        phone,
		Relationship: strings.TrimSpace(req.Relationship),
		Consent:      true,
	}
	return s.claims.Create(ctx, claim)
}

// List returns claims for admin review, optionally filtered by status.
func (s *ClaimsService) List(ctx context.Context, status string) ([]entity.ClaimRequest, error) {
	status = strings.TrimSpace(strings.ToLower(status))
	switch status {
	case "", entity.ClaimStatusPending, entity.ClaimStatusApproved, entity.ClaimStatusRejected:
	default:
		return nil, fmt.Errorf("unknown claim status %q", status)
	}
	return s.claims.List(ctx, status)
}

// Approve transitions a pending claim to approved and issues the one-time
// access token. The token is returned here and never retrievable again.
func (s *ClaimsService) Approve(ctx context.Context, claimID string, reviewerID uuid.UUID) (*entity.CompanyUser, string, error) {
	id, err := uuid.Parse(claimID)
	if err != nil {
		return nil, "", ErrInvalidClaimID
	}

	token, err := GenerateAccessToken()
	if err != nil {
		return nil, "", err
	}

	user, err := s.claims.Approve(ctx, id, reviewerID, token)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Reject transitions a pending claim to rejected with optional notes.
func (s *ClaimsService) Reject(ctx context.Context, claimID string, reviewerID uuid.UUID, notes *string) error {
	id, err := uuid.Parse(claimID)
	if err != nil {
		return ErrInvalidClaimID
	}
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if trimmed == "" {
			notes = nil
		} else {
			notes = &trimmed
		}
	}
	return s.claims.Reject(ctx, id, reviewerID, notes)
}
