package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a back-office account. PasswordHash backs the legacy login
// path; identity-provider logins map onto the same row by email.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsSuperAdmin bool      `json:"is_super_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
