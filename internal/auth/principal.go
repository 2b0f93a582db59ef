package auth

import "github.com/google/uuid"

// Internal roles. External identity metadata is mapped onto these once at
// the boundary; everything downstream checks the enum.
const (
	RoleAdmin     = "admin"
	RoleCompany   = "company"
	RoleAnonymous = "anonymous"
)

// Principal is the authenticated identity threaded into request handlers.
// CompanyID is the zero UUID unless the session is company-scoped.
type Principal struct {
	ID        uuid.UUID
	Email     string
	Role      string
	CompanyID uuid.UUID
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// MapExternalRole converts identity-provider role metadata to an internal
// role. Unknown values fall back to anonymous.
func MapExternalRole(value string) string {
	switch value {
	case "admin", "administrator", "superadmin":
		return RoleAdmin
	case "company", "company_user", "owner":
		return RoleCompany
	default:
		return RoleAnonymous
	}
}
