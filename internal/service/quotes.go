package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/industrikatalogen/api/internal/dto"
	"github.com/industrikatalogen/api/internal/entity"
	"github.com/industrikatalogen/api/internal/repository"
)

// ErrServiceDescriptionRequired indicates an empty service description.
var ErrServiceDescriptionRequired = errors.New("service description is required")

// AttachmentStore persists uploaded files and returns their storage keys.
type AttachmentStore interface {
	UploadFile(ctx context.Context, data []byte, filename string) (string, error)
}

// QuotesService handles quote-request submission and admin listing.
type QuotesService struct {
	quotes      repository.QuotesRepository
	companies   repository.CompaniesRepository
	attachments AttachmentStore
}

// NewQuotesService constructs a QuotesService. The attachment store may be
// nil, in which case uploads are refused.
func NewQuotesService(quotes repository.QuotesRepository, companies repository.CompaniesRepository, attachments AttachmentStore) *QuotesService {
	return &QuotesService{quotes: quotes, companies: companies, attachments: attachments}
}

// Attachment is a file uploaded alongside a quote request.
type Attachment struct {
	Filename string
	Data     []byte
}

// Submit validates and persists a quote request. A request without a
// company slug is stored as a general quote.
func (s *QuotesService) Submit(ctx context.Context, req dto.CreateQuoteRequest, attachments []Attachment) (*entity.QuoteRequest, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.ServiceDescription) == "" {
		return nil, ErrServiceDescriptionRequired
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

	var companyID *uuid.UUID
	if slug := strings.TrimSpace(req.CompanySlug); slug != "" {
		company, err := s.companies.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		companyID = &company.ID
	}

	keys := make([]string, 0, len(attachments))
	for _, attachment := range attachments {
		if s.attachments == nil {
			return nil, errors.New("attachment storage is not configured")
		}
		key, err := s.attachments.UploadFile(ctx, attachment.Data, attachment.Filename)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	quote := &entity.QuoteRequest{
		CompanyID:          companyID,
		Name:               name,
		Email:              email,
		Phone:              phone,
		ServiceDescription: strings.TrimSpace(req.ServiceDescription),
		Urgency:            req.Urgency,
		PreferredContact:   req.PreferredContact,
		Attachments:        keys,
	}
	return s.quotes.Create(ctx, quote)
}

// List returns quote requests for the back office.
func (s *QuotesService) List(ctx context.Context, companyID *uuid.UUID, limit, offset int) ([]entity.QuoteRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.quotes.List(ctx, companyID, limit, offset)
}
