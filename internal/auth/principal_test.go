package auth

import "testing"

func TestMapExternalRole(t *testing.T) {
	tests := map[string]string{
		"admin":         RoleAdmin,
		"administrator": RoleAdmin,
		"superadmin":    RoleAdmin,
		"company":       RoleCompany,
		"company_user":  RoleCompany,
		"owner":         RoleCompany,
		"":              RoleAnonymous,
		"guest":         RoleAnonymous,
		"ADMIN":         RoleAnonymous,
	}
	for input, expect := range tests {
		if got := MapExternalRole(input); got != expect {
			t.Fatalf("MapExternalRole(%q) = %q, expected %q", input, got, expect)
		}
	}
}

func TestPrincipal_IsAdmin(t *testing.T) {
	if !(Principal{Role: RoleAdmin}).IsAdmin() {
		t.Fatalf("expected admin principal")
	}
	if (Principal{Role: RoleCompany}).IsAdmin() {
		t.Fatalf("company principal must not be admin")
	}
	if (Principal{}).IsAdmin() {
		t.Fatalf("zero principal must not be admin")
	}
}
