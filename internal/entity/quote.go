package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuoteRequest is a write-once record for manual follow-up. A nil CompanyID
// marks a general request not addressed to a specific company.
type QuoteRequest struct {
	ID                 uuid.UUID  `json:"id"`
	CompanyID          *uuid.UUID `json:"company_id,omitempty"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Phone              *string    `json:"phone,omitempty"`
	ServiceDescription string     `json:"service_description"`
	Urgency            *string    `json:"urgency,omitempty"`
	PreferredContact   *string    `json:"preferred_contact,omitempty"`
	Attachments        []string   `json:"attachments"`
	CreatedAt          time.Time  `json:"created_at"`
}
