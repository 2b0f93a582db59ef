package dto

// CreateQuoteRequest is the public quote submission payload. CompanySlug is
// empty for general requests.
type CreateQuoteRequest struct {
	CompanySlug        string  `json:"company_slug,omitempty"`
	Name               string  `json:"name" validate:"required"`
	Email              string  `json:"email" validate:"required"`
	Phone              *string `json:"phone,omitempty"`
	ServiceDescription string  `json:"service_description" validate:"required"`
	Urgency            *string `json:"urgency,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	PreferredContact   *string `json:"preferred_contact,omitempty" validate:"omitempty,oneof=email phone"`
}

// QuoteSubmittedResponse confirms a stored quote request.
type QuoteSubmittedResponse struct {
	ID          string   `json:"id"`
	Attachments []string `json:"attachments,omitempty"`
}
