package dto

// CreateUserRequest is used by super-admins to create back-office accounts.
type CreateUserRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role"`
	IsSuperAdmin bool   `json:"is_super_admin"`
}

// UpdateUserRequest captures partial updates to a back-office account.
type UpdateUserRequest struct {
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	Role         *string `json:"role,omitempty"`
	IsSuperAdmin *bool   `json:"is_super_admin,omitempty"`
}

// UserResponse represents back-office account data returned to clients.
type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	IsSuperAdmin bool   `json:"is_super_admin"`
}
