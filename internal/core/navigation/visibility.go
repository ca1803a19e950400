package navigation

import (
	"github.com/orientavoc/orientation-platform/internal/core/authz"
	"github.com/orientavoc/orientation-platform/internal/core/domain"
)

// FilteredCategory is a category after visibility filtering. Empty is set
// when the category itself was visible but filtering left no items in any
// group; callers must render an explicit "no visible functionality" notice
// for it instead of an empty grid.
type FilteredCategory struct {
	domain.AdminCategory
	Empty bool `json:"empty"`
}

func permUser(permissions []string) *domain.User {
	return &domain.User{Permissions: permissions}
}

// VisibleCategories filters the admin catalog down to the categories the
// given permission set may see. Input order is preserved. Group and item
// contents are filtered too, so the result is ready to render.
func VisibleCategories(permissions []string) []FilteredCategory {
	u := permUser(permissions)
	var out []FilteredCategory
	for _, cat := range AdminCatalog() {
		if !authz.HasAnyPermission(u, cat.RequiredPermissions) {
			continue
		}
		out = append(out, filterCategory(cat, u))
	}
	return out
}

// VisibleItemsInCategory filters a single category's groups and items by the
// given permission set, preserving order. The category-level requirement is
// re-checked so a direct lookup cannot bypass it.
func VisibleItemsInCategory(cat domain.AdminCategory, permissions []string) (FilteredCategory, bool) {
	u := permUser(permissions)
	if !authz.HasAnyPermission(u, cat.RequiredPermissions) {
		return FilteredCategory{}, false
	}
	return filterCategory(cat, u), true
}

// CategoryByID looks a category up in the static catalog.
func CategoryByID(id string) (domain.AdminCategory, bool) {
	for _, cat := range AdminCatalog() {
		if cat.ID == id {
			return cat, true
		}
	}
	return domain.AdminCategory{}, false
}

// VisibleStudentItems filters the student catalog: items without a
// requirement are always included, the rest need any-of their listed
// permissions. Order is preserved.
func VisibleStudentItems(permissions []string) []domain.StudentItem {
	u := permUser(permissions)
	var out []domain.StudentItem
	for _, item := range StudentCatalog() {
		if len(item.RequiredPermissions) > 0 && !authz.HasAnyPermission(u, item.RequiredPermissions) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func filterCategory(cat domain.AdminCategory, u *domain.User) FilteredCategory {
	filtered := cat
	filtered.Groups = nil
	itemCount := 0
	for _, grp := range cat.Groups {
		if !authz.HasAnyPermission(u, grp.RequiredPermissions) {
			continue
		}
		kept := grp
		kept.Items = nil
		for _, item := range grp.Items {
			if !authz.HasAnyPermission(u, item.RequiredPermissions) {
				continue
			}
			kept.Items = append(kept.Items, item)
		}
		if len(kept.Items) == 0 {
			continue
		}
		itemCount += len(kept.Items)
		filtered.Groups = append(filtered.Groups, kept)
	}
	return FilteredCategory{AdminCategory: filtered, Empty: itemCount == 0}
}
