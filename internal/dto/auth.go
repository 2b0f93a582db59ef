package dto

import "github.com/industrikatalogen/api/internal/entity"

// LoginRequest captures admin credential input for the legacy path.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the issued session token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// CompanyLoginRequest captures the legacy token-based company login.
type CompanyLoginRequest struct {
	Email       string `json:"email" validate:"required"`
	AccessToken string `json:"access_token" validate:"required"`
}

// CompanyLoginResponse returns the authenticated company user and the
// bearer token for subsequent requests.
type CompanyLoginResponse struct {
	CompanyUser *entity.CompanyUser `json:"company_user"`
	Token       string              `json:"token"`
}
