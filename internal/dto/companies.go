package dto

// ListFilter contains query parameters for company listing endpoints.
type ListFilter struct {
	Search     string
	Region     string
	Categories []string
	Sort       string
	Limit      int
	Offset     int
}

// CreateCompanyRequest is used by administrators to add a listing.
type CreateCompanyRequest struct {
	Name          string   `json:"name" validate:"required"`
	DescriptionSV *string  `json:"description_sv,omitempty"`
	DescriptionEN *string  `json:"description_en,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	ServiceAreas  []string `json:"service_areas,omitempty"`
	Specialties   []string `json:"specialties,omitempty"`
	Address       *string  `json:"address,omitempty"`
	PostalCode    *string  `json:"postal_code,omitempty"`
	City          *string  `json:"city,omitempty"`
	Region        *string  `json:"region,omitempty"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string  `json:"phone,omitempty"`
	Website       *string  `json:"website,omitempty" validate:"omitempty,url"`
	IsFeatured    bool     `json:"is_featured"`
	IsVerified    bool     `json:"is_verified"`
}

// UpdateCompanyRequest captures administrator-triggered partial updates.
// The slug is immutable and deliberately absent.
type UpdateCompanyRequest struct {
	Name          *string   `json:"name,omitempty"`
	DescriptionSV *string   `json:"description_sv,omitempty"`
	DescriptionEN *string   `json:"description_en,omitempty"`
	Categories    *[]string `json:"categories,omitempty"`
	ServiceAreas  *[]string `json:"service_areas,omitempty"`
	Specialties   *[]string `json:"specialties,omitempty"`
	Address       *string   `json:"address,omitempty"`
	PostalCode    *string   `json:"postal_code,omitempty"`
	City          *string   `json:"city,omitempty"`
	Region        *string   `json:"region,omitempty"`
	Email         *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string   `json:"phone,omitempty"`
	Website       *string   `json:"website,omitempty" validate:"omitempty,url"`
	IsFeatured    *bool     `json:"is_featured,omitempty"`
	IsVerified    *bool     `json:"is_verified,omitempty"`
}
