package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanyUser is created as a side effect of claim approval. The access
// token is the sole credential for the legacy company login path and is
// never returned after issuance.
type CompanyUser struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   uuid.UUID  `json:"company_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	AccessToken string     `json:"-"`
	Active      bool       `json:"active"`
	ApprovedBy  *uuid.UUID `json:"approved_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
