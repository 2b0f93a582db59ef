package dto

// CreateClaimRequest is the public ownership-claim submission payload.
type CreateClaimRequest struct {
	CompanySlug  string  `json:"company_slug" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required"`
	Phone        *string `json:"phone,omitempty"`
	Relationship string  `json:"relationship" validate:"required"`
	Consent      bool    `json:"consent"`
}

// ClaimSubmittedResponse confirms a stored claim.
type ClaimSubmittedResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// RejectClaimRequest carries the optional reviewer notes.
type RejectClaimRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// ClaimApprovedResponse is returned to the reviewing admin. AccessToken is
// surfaced exactly once and not retrievable afterwards.
type ClaimApprovedResponse struct {
	ClaimID     string `json:"claim_id"`
	CompanyID   string `json:"company_id"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}
