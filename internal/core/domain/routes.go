package domain

// Redirect targets are part of the platform's fixed route surface and are
// deliberately not configurable.
const (
	LoginPath           = "/login"
	StudentHomePath     = "/app/student"
	InstitutionHomePath = "/app/institution"
	AdminHomePath       = "/app/admin"
)
