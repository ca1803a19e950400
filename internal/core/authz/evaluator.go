// Package authz contains the permission evaluator: total, side-effect-free
// predicates over a possibly-nil user record. Every predicate fails closed
// when the user is nil or the relevant list is absent.
//
// Policy for empty requirement lists: an empty list passes vacuously for both
// the any-of and the all-of forms, provided a user is present. A guard that
// states no requirement must not lock authenticated users out.
package authz

import (
	"strings"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
)

// HasPermission reports whether the user holds the given permission code.
func HasPermission(u *domain.User, code string) bool {
	if u == nil {
		return false
	}
	for _, p := range u.Permissions {
		if p == code {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the user holds at least one of codes.
// An empty codes list passes vacuously for a non-nil user.
func HasAnyPermission(u *domain.User, codes []string) bool {
	if u == nil {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, c := range codes {
		if HasPermission(u, c) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the user holds every code in codes.
// An empty codes list passes vacuously for a non-nil user.
func HasAllPermissions(u *domain.User, codes []string) bool {
	if u == nil {
		return false
	}
	for _, c := range codes {
		if !HasPermission(u, c) {
			return false
		}
	}
	return true
}

// HasGroup reports exact membership in the named group.
func HasGroup(u *domain.User, name string) bool {
	if u == nil {
		return false
	}
	for _, g := range u.Groups {
		if g == name {
			return true
		}
	}
	return false
}

// HasAnyGroup reports membership in at least one of the named groups.
// An empty names list passes vacuously for a non-nil user.
func HasAnyGroup(u *domain.User, names []string) bool {
	if u == nil {
		return false
	}
	if len(names) == 0 {
		return true
	}
	for _, n := range names {
		if HasGroup(u, n) {
			return true
		}
	}
	return false
}

// InInstitutionGroup reports whether any of the user's groups looks like an
// institution membership. The backend emits several variants of the label
// ("Institución Educativa", "Institucion", ...), so the match is a
// case-insensitive substring test on the accent-free stem.
func InInstitutionGroup(u *domain.User) bool {
	if u == nil {
		return false
	}
	for _, g := range u.Groups {
		if strings.Contains(strings.ToLower(g), "instituci") {
			return true
		}
	}
	return false
}
