// Package navigation holds the static admin and student navigation catalogs
// and the visibility filtering applied to them per request. The catalogs are
// configuration, not data: they are defined once here and never mutated.
package navigation

import "github.com/orientavoc/orientation-platform/internal/core/domain"

// AdminCatalog returns the admin home-screen catalog in display order.
// A fresh copy is returned on every call so callers can filter in place.
func AdminCatalog() []domain.AdminCategory {
	return []domain.AdminCategory{
		{
			ID:    "location",
			Title: "Ubicación",
			RequiredPermissions: []string{
				domain.PermManageCountries,
				domain.PermManageProvinces,
				domain.PermManageLocalities,
			},
			Groups: []domain.AdminGroup{
				{
					Title: "Catálogos geográficos",
					Items: []domain.AdminItem{
						{ID: "countries", Label: "Países", Icon: "globe", Route: "/app/admin/countries",
							RequiredPermissions: []string{domain.PermManageCountries}},
						{ID: "provinces", Label: "Provincias", Icon: "map", Route: "/app/admin/provinces",
							RequiredPermissions: []string{domain.PermManageProvinces}},
						{ID: "localities", Label: "Localidades", Icon: "pin", Route: "/app/admin/localities",
							RequiredPermissions: []string{domain.PermManageLocalities}},
					},
				},
			},
		},
		{
			ID:    "reference",
			Title: "Tablas de referencia",
			RequiredPermissions: []string{
				domain.PermManageGenders,
				domain.PermManageInstitutionTypes,
				domain.PermManageCareerTypes,
			},
			Groups: []domain.AdminGroup{
				{
					Title: "Datos demográficos",
					Items: []domain.AdminItem{
						{ID: "genders", Label: "Géneros", Icon: "users", Route: "/app/admin/genders",
							RequiredPermissions: []string{domain.PermManageGenders}},
					},
				},
				{
					Title: "Clasificaciones",
					Items: []domain.AdminItem{
						{ID: "institution-types", Label: "Tipos de institución", Icon: "building", Route: "/app/admin/institution-types",
							RequiredPermissions: []string{domain.PermManageInstitutionTypes}},
						{ID: "career-types", Label: "Tipos de carrera", Icon: "briefcase", Route: "/app/admin/career-types",
							RequiredPermissions: []string{domain.PermManageCareerTypes}},
					},
				},
			},
		},
		{
			ID:    "access",
			Title: "Usuarios y accesos",
			RequiredPermissions: []string{
				domain.PermManageUsers,
				domain.PermManageStudents,
				domain.PermManageGroups,
				domain.PermManagePermissions,
			},
			Groups: []domain.AdminGroup{
				{
					Title: "Cuentas",
					Items: []domain.AdminItem{
						{ID: "users", Label: "Usuarios", Icon: "user", Route: "/app/admin/users",
							RequiredPermissions: []string{domain.PermManageUsers}},
						{ID: "students", Label: "Estudiantes", Icon: "graduation", Route: "/app/admin/students",
							RequiredPermissions: []string{domain.PermManageStudents}},
					},
				},
				{
					Title: "Permisos",
					Items: []domain.AdminItem{
						{ID: "groups", Label: "Grupos", Icon: "users", Route: "/app/admin/groups",
							RequiredPermissions: []string{domain.PermManageGroups}},
						{ID: "permissions", Label: "Permisos", Icon: "lock", Route: "/app/admin/permissions",
							RequiredPermissions: []string{domain.PermManagePermissions}},
					},
				},
			},
		},
		{
			ID:    "institutions",
			Title: "Instituciones y carreras",
			RequiredPermissions: []string{
				domain.PermManageInstitutions,
				domain.PermManageCareers,
				domain.PermManageInstitutionProfile,
				domain.PermManageCareerOfferings,
				domain.PermManageFAQs,
				domain.PermManageMaterials,
			},
			Groups: []domain.AdminGroup{
				{
					Title: "Oferta académica",
					Items: []domain.AdminItem{
						{ID: "institutions", Label: "Instituciones", Icon: "building", Route: "/app/admin/institutions",
							RequiredPermissions: []string{domain.PermManageInstitutions}},
						{ID: "careers", Label: "Carreras", Icon: "briefcase", Route: "/app/admin/careers",
							RequiredPermissions: []string{domain.PermManageCareers}},
						{ID: "offerings", Label: "Oferta por institución", Icon: "list", Route: "/app/admin/offerings",
							RequiredPermissions: []string{domain.PermManageCareerOfferings}},
					},
				},
				{
					Title: "Contenido institucional",
					Items: []domain.AdminItem{
						{ID: "institution-profile", Label: "Perfil institucional", Icon: "id", Route: "/app/admin/institution-profile",
							RequiredPermissions: []string{domain.PermManageInstitutionProfile}},
						{ID: "faqs", Label: "Preguntas frecuentes", Icon: "help", Route: "/app/admin/faqs",
							RequiredPermissions: []string{domain.PermManageFAQs}},
						{ID: "materials", Label: "Materiales", Icon: "folder", Route: "/app/admin/materials",
							RequiredPermissions: []string{domain.PermManageMaterials}},
					},
				},
			},
		},
		{
			ID:    "questionnaire",
			Title: "Cuestionario vocacional",
			RequiredPermissions: []string{
				domain.PermManageQuestionnaires,
				domain.PermManageQuestions,
				domain.PermManageAnswerOptions,
				domain.PermManageRecommendations,
			},
			Groups: []domain.AdminGroup{
				{
					Title: "Contenido del cuestionario",
					Items: []domain.AdminItem{
						{ID: "questionnaires", Label: "Cuestionarios", Icon: "clipboard", Route: "/app/admin/questionnaires",
							RequiredPermissions: []string{domain.PermManageQuestionnaires}},
						{ID: "questions", Label: "Preguntas", Icon: "question", Route: "/app/admin/questions",
							RequiredPermissions: []string{domain.PermManageQuestions}},
						{ID: "answer-options", Label: "Opciones de respuesta", Icon: "check", Route: "/app/admin/answer-options",
							RequiredPermissions: []string{domain.PermManageAnswerOptions}},
						{ID: "recommendations", Label: "Recomendaciones", Icon: "star", Route: "/app/admin/recommendations",
							RequiredPermissions: []string{domain.PermManageRecommendations}},
					},
				},
			},
		},
		{
			ID:    "content",
			Title: "Contenido de la plataforma",
			RequiredPermissions: []string{
				domain.PermManageNews,
				domain.PermManageTestimonials,
				domain.PermManageContent,
				domain.PermManageSettings,
			},
			Groups: []domain.AdminGroup{
				{
					Title: "Publicaciones",
					Items: []domain.AdminItem{
						{ID: "news", Label: "Novedades", Icon: "news", Route: "/app/admin/news",
							RequiredPermissions: []string{domain.PermManageNews}},
						{ID: "testimonials", Label: "Testimonios", Icon: "quote", Route: "/app/admin/testimonials",
							RequiredPermissions: []string{domain.PermManageTestimonials}},
						{ID: "pages", Label: "Páginas", Icon: "document", Route: "/app/admin/pages",
							RequiredPermissions: []string{domain.PermManageContent}},
					},
				},
				{
					Title: "Configuración",
					Items: []domain.AdminItem{
						{ID: "settings", Label: "Ajustes", Icon: "gear", Route: "/app/admin/settings",
							RequiredPermissions: []string{domain.PermManageSettings}},
					},
				},
			},
		},
		{
			ID:    "reports",
			Title: "Estadísticas e informes",
			RequiredPermissions: []string{
				domain.PermViewStats,
				domain.PermViewReports,
				domain.PermViewAuditLog,
				domain.PermExportData,
			},
			Groups: []domain.AdminGroup{
				{
					Title: "Seguimiento",
					Items: []domain.AdminItem{
						{ID: "stats", Label: "Estadísticas", Icon: "chart", Route: "/app/admin/stats",
							RequiredPermissions: []string{domain.PermViewStats}},
						{ID: "reports", Label: "Informes", Icon: "report", Route: "/app/admin/reports",
							RequiredPermissions: []string{domain.PermViewReports}},
						{ID: "audit-log", Label: "Auditoría", Icon: "shield", Route: "/app/admin/audit-log",
							RequiredPermissions: []string{domain.PermViewAuditLog}},
						{ID: "exports", Label: "Exportaciones", Icon: "download", Route: "/app/admin/exports",
							RequiredPermissions: []string{domain.PermExportData}},
					},
				},
			},
		},
		{
			ID:    "about",
			Title: "Acerca de la plataforma",
			Groups: []domain.AdminGroup{
				{
					Title: "Información",
					Items: []domain.AdminItem{
						{ID: "about", Label: "Acerca de", Icon: "info", Route: "/app/admin/about"},
					},
				},
			},
		},
	}
}

// StudentCatalog returns the student navigation items in display order.
// Items without a permission requirement are the basic, always-visible set.
func StudentCatalog() []domain.StudentItem {
	return []domain.StudentItem{
		{ID: "home", Label: "Inicio", Icon: "home", Route: "/app/student"},
		{ID: "profile", Label: "Mi perfil", Icon: "user", Route: "/app/student/profile"},
		{ID: "questionnaire", Label: "Cuestionario", Icon: "clipboard", Route: "/app/student/questionnaire",
			RequiredPermissions: []string{domain.PermTakeQuestionnaire}},
		{ID: "results", Label: "Mis resultados", Icon: "chart", Route: "/app/student/results",
			RequiredPermissions: []string{domain.PermViewResults}},
		{ID: "careers", Label: "Carreras", Icon: "briefcase", Route: "/app/student/careers",
			RequiredPermissions: []string{domain.PermBrowseCareers}},
		{ID: "institutions", Label: "Instituciones", Icon: "building", Route: "/app/student/institutions",
			RequiredPermissions: []string{domain.PermBrowseInstitutions}},
		{ID: "materials", Label: "Materiales", Icon: "folder", Route: "/app/student/materials",
			RequiredPermissions: []string{domain.PermViewMaterials}},
		{ID: "faqs", Label: "Preguntas frecuentes", Icon: "help", Route: "/app/student/faqs"},
	}
}

// AdminPermissions returns the union of every permission referenced anywhere
// in the admin catalog, in first-appearance order. The admin guard grants
// access on any-of this set, so the guard can never drift from the catalog.
func AdminPermissions() []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(codes []string) {
		for _, c := range codes {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	for _, cat := range AdminCatalog() {
		add(cat.RequiredPermissions)
		for _, grp := range cat.Groups {
			add(grp.RequiredPermissions)
			for _, item := range grp.Items {
				add(item.RequiredPermissions)
			}
		}
	}
	return out
}
