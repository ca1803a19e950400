package domain

// Navigation catalogs are static configuration: built once at startup, never
// created or mutated at runtime. Visibility is computed per request by
// filtering against the caller's permission list.
//
// Permission attachment works the same at every level: a node with an empty
// RequiredPermissions list is always visible; a non-empty list is an any-of
// requirement. Items on the student side carry a single-element list.

// AdminItem is a leaf navigation target on the admin surface.
type AdminItem struct {
	ID                  string   `json:"id"`
	Label               string   `json:"label"`
	Icon                string   `json:"icon,omitempty"`
	Route               string   `json:"route"`
	RequiredPermissions []string `json:"required_permissions,omitempty"`
}

// AdminGroup is a titled block of items inside a category.
type AdminGroup struct {
	Title               string      `json:"title"`
	Items               []AdminItem `json:"items"`
	RequiredPermissions []string    `json:"required_permissions,omitempty"`
}

// AdminCategory is a top-level section of the admin home screen.
type AdminCategory struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Groups              []AdminGroup `json:"groups"`
	RequiredPermissions []string     `json:"required_permissions,omitempty"`
}

// StudentItem is a student-side navigation target. A zero-length
// RequiredPermissions list marks the basic, always-visible variant.
type StudentItem struct {
	ID                  string   `json:"id"`
	Label               string   `json:"label"`
	Icon                string   `json:"icon,omitempty"`
	Route               string   `json:"route"`
	RequiredPermissions []string `json:"required_permissions,omitempty"`
}
