package domain

import "time"

const (
	RoleAdmin       = "admin"
	RoleStudent     = "student"
	RoleInstitution = "institution"
	RoleGuest       = "guest"
)

// Well-known group labels exactly as the platform backend emits them. Groups
// are display strings, not codes; the institution group in particular appears
// with several suffixes, so coarse matching is substring-based (see authz).
const (
	GroupAdmin       = "Administrador"
	GroupStudent     = "Estudiante"
	GroupInstitution = "Institución Educativa"
)

// User models the authenticated principal. The record is owned by the session
// layer and replaced wholesale on every change; readers never mutate it.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Groups       []string  `json:"groups"`
	Permissions  []string  `json:"permissions"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Clone returns a deep copy so the session layer can hand the record out
// without sharing the group and permission slices.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Groups = append([]string(nil), u.Groups...)
	clone.Permissions = append([]string(nil), u.Permissions...)
	return &clone
}
