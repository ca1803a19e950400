// Permission codes are the single source of truth for fine-grained gating.
// Every consumer (guards, navigation catalogs, seeders) derives from the
// constants below; nothing else may hard-code a permission string.
package domain

// Catalog administration (ABM screens for reference tables).
const (
	PermManageCountries        = "MANAGE_COUNTRIES"
	PermManageProvinces        = "MANAGE_PROVINCES"
	PermManageLocalities       = "MANAGE_LOCALITIES"
	PermManageGenders          = "MANAGE_GENDERS"
	PermManageInstitutionTypes = "MANAGE_INSTITUTION_TYPES"
	PermManageCareerTypes      = "MANAGE_CAREER_TYPES"
)

// User and access administration.
const (
	PermManageUsers       = "MANAGE_USERS"
	PermManageStudents    = "MANAGE_STUDENTS"
	PermManageGroups      = "MANAGE_GROUPS"
	PermManagePermissions = "MANAGE_PERMISSIONS"
)

// Institution and career administration.
const (
	PermManageInstitutions       = "MANAGE_INSTITUTIONS"
	PermManageCareers            = "MANAGE_CAREERS"
	PermManageInstitutionProfile = "MANAGE_INSTITUTION_PROFILE"
	PermManageCareerOfferings    = "MANAGE_CAREER_OFFERINGS"
	PermManageFAQs               = "MANAGE_FAQS"
	PermManageMaterials          = "MANAGE_MATERIALS"
)

// Questionnaire content administration.
const (
	PermManageQuestionnaires  = "MANAGE_QUESTIONNAIRES"
	PermManageQuestions       = "MANAGE_QUESTIONS"
	PermManageAnswerOptions   = "MANAGE_ANSWER_OPTIONS"
	PermManageRecommendations = "MANAGE_RECOMMENDATIONS"
)

// Platform content.
const (
	PermManageNews         = "MANAGE_NEWS"
	PermManageTestimonials = "MANAGE_TESTIMONIALS"
	PermManageContent      = "MANAGE_CONTENT"
	PermManageSettings     = "MANAGE_SETTINGS"
)

// Reporting and oversight.
const (
	PermViewStats    = "VIEW_STATS"
	PermViewReports  = "VIEW_REPORTS"
	PermViewAuditLog = "VIEW_AUDIT_LOG"
	PermExportData   = "EXPORT_DATA"
)

// Student-side capabilities.
const (
	PermTakeQuestionnaire  = "TAKE_QUESTIONNAIRE"
	PermViewResults        = "VIEW_RESULTS"
	PermBrowseCareers      = "BROWSE_CAREERS"
	PermBrowseInstitutions = "BROWSE_INSTITUTIONS"
	PermViewMaterials      = "VIEW_MATERIALS"
)
