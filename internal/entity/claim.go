package entity

import (
	"time"

	"github.com/google/uuid"
)

// Claim status values. A claim starts pending and moves exactly once to a
// terminal state.
const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"
)

// ClaimRequest is an assertion by a third party that they represent a
// listed company, awaiting admin review.
type ClaimRequest struct {
	ID           uuid.UUID  `json:"id"`
	CompanyID    uuid.UUID  `json:"company_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        *string    `json:"phone,omitempty"`
	Relationship string     `json:"relationship"`
	Consent      bool       `json:"consent"`
	Status       string     `json:"status"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy   *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewNotes  *string    `json:"review_notes,omitempty"`
}
