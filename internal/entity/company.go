package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a business listed in the directory. Slug is derived
// once from the name and is immutable afterwards.
type Company struct {
	ID            uuid.UUID `json:"id"`
	Slug          string    `json:"slug"`
	Name          string    `json:"name"`
	DescriptionSV *string   `json:"description_sv,omitempty"`
	DescriptionEN *string   `json:"description_en,omitempty"`
	Categories    []string  `json:"categories"`
	ServiceAreas  []string  `json:"service_areas"`
	Specialties   []string  `json:"specialties"`
	Address       *string   `json:"address,omitempty"`
	PostalCode    *string   `json:"postal_code,omitempty"`
	City          *string   `json:"city,omitempty"`
	Region        *string   `json:"region,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Website       *string   `json:"website,omitempty"`
	IsFeatured    bool      `json:"is_featured"`
	IsVerified    bool      `json:"is_verified"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
