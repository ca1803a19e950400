package authz

import (
	"testing"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
)

func testUser(perms, groups []string) *domain.User {
	return &domain.User{
		ID:          "u1",
		Email:       "ana@example.com",
		Name:        "Ana",
		Role:        domain.RoleStudent,
		Groups:      groups,
		Permissions: perms,
	}
}

func TestHasPermission(t *testing.T) {
	u := testUser([]string{domain.PermViewStats, domain.PermManageUsers}, nil)

	if !HasPermission(u, domain.PermViewStats) {
		t.Fatalf("expected VIEW_STATS to be granted")
	}
	if HasPermission(u, domain.PermManageCountries) {
		t.Fatalf("expected MANAGE_COUNTRIES to be denied")
	}
	if HasPermission(nil, domain.PermViewStats) {
		t.Fatalf("nil user must fail closed")
	}
	if HasPermission(testUser(nil, nil), domain.PermViewStats) {
		t.Fatalf("absent permission list must fail closed")
	}
}

func TestHasAnyPermission(t *testing.T) {
	u := testUser([]string{domain.PermViewStats}, nil)

	if !HasAnyPermission(u, []string{domain.PermManageUsers, domain.PermViewStats}) {
		t.Fatalf("expected any-of to pass on non-empty intersection")
	}
	if HasAnyPermission(u, []string{domain.PermManageUsers, domain.PermManageGroups}) {
		t.Fatalf("expected any-of to fail on empty intersection")
	}
	if !HasAnyPermission(u, nil) {
		t.Fatalf("empty requirement must pass vacuously for a present user")
	}
	if HasAnyPermission(nil, nil) {
		t.Fatalf("nil user must fail even with an empty requirement")
	}
}

func TestHasAllPermissions(t *testing.T) {
	u := testUser([]string{domain.PermViewStats, domain.PermManageUsers}, nil)

	if !HasAllPermissions(u, []string{domain.PermViewStats, domain.PermManageUsers}) {
		t.Fatalf("expected all-of to pass on full subset")
	}
	if HasAllPermissions(u, []string{domain.PermViewStats, domain.PermManageGroups}) {
		t.Fatalf("expected all-of to fail on partial subset")
	}
	if !HasAllPermissions(u, nil) {
		t.Fatalf("empty requirement must pass vacuously for a present user")
	}
	if HasAllPermissions(nil, nil) {
		t.Fatalf("nil user must fail even with an empty requirement")
	}
}

func TestGroupChecks(t *testing.T) {
	u := testUser(nil, []string{domain.GroupStudent})

	if !HasGroup(u, domain.GroupStudent) {
		t.Fatalf("expected exact group match")
	}
	if HasGroup(u, "estudiante") {
		t.Fatalf("group match must be exact, not case-folded")
	}
	if !HasAnyGroup(u, []string{domain.GroupAdmin, domain.GroupStudent}) {
		t.Fatalf("expected any-of group match")
	}
	if HasAnyGroup(nil, []string{domain.GroupStudent}) {
		t.Fatalf("nil user must fail closed")
	}
}

func TestInInstitutionGroup(t *testing.T) {
	cases := []struct {
		groups []string
		want   bool
	}{
		{[]string{"Institución Educativa"}, true},
		{[]string{"INSTITUCION TERCIARIA"}, true},
		{[]string{"Estudiante"}, false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := InInstitutionGroup(testUser(nil, tc.groups)); got != tc.want {
			t.Fatalf("InInstitutionGroup(%v) = %v, want %v", tc.groups, got, tc.want)
		}
	}
	if InInstitutionGroup(nil) {
		t.Fatalf("nil user must fail closed")
	}
}
