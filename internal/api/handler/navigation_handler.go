package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
	"github.com/orientavoc/orientation-platform/internal/core/navigation"
)

// emptyCategoryNotice is rendered instead of an empty grid when a visible
// category has no visible items left after filtering.
const emptyCategoryNotice = "Esta sección no tiene funcionalidades visibles para tu usuario."

type NavigationHandler struct{}

func NewNavigationHandler() *NavigationHandler {
	return &NavigationHandler{}
}

type navItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Route string `json:"route"`
}

type navGroup struct {
	Title string    `json:"title"`
	Items []navItem `json:"items"`
}

type navCategory struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Groups []navGroup `json:"groups"`
	Empty  bool       `json:"empty"`
	Notice string     `json:"notice,omitempty"`
}

type adminNavigationResponse struct {
	Categories []navCategory `json:"categories"`
}

type studentNavigationResponse struct {
	Items []navItem `json:"items"`
}

// AdminNavigation returns the admin menu tree filtered by the caller's
// permissions.
//
// @Summary      Admin navigation tree
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  adminNavigationResponse
// @Failure      401  {object}  map[string]string
// @Router       /app/admin/navigation [get]
func (h *NavigationHandler) AdminNavigation(c echo.Context) error {
	u, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	visible := navigation.VisibleCategories(u.Permissions)
	out := make([]navCategory, 0, len(visible))
	for _, cat := range visible {
		out = append(out, toNavCategory(cat))
	}
	return c.JSON(http.StatusOK, adminNavigationResponse{Categories: out})
}

// AdminCategory returns one filtered category by id.
//
// @Summary      Admin navigation category
// @Tags         navigation
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  navCategory
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /app/admin/navigation/{id} [get]
func (h *NavigationHandler) AdminCategory(c echo.Context) error {
	u, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	cat, ok := navigation.CategoryByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown category")
	}

	filtered, ok := navigation.VisibleItemsInCategory(cat, u.Permissions)
	if !ok {
		return domain.ErrForbidden
	}
	return c.JSON(http.StatusOK, toNavCategory(filtered))
}

// StudentNavigation returns the student menu filtered by the caller's
// permissions. Basic items are always present.
//
// @Summary      Student navigation
// @Tags         navigation
// @Produce     json
// @Success      200  {object}  studentNavigationResponse
// @Failure      401  {object}  map[string]string
// @Router       /app/student/navigation [get]
func (h *NavigationHandler) StudentNavigation(c echo.Context) error {
	u, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	items := navigation.VisibleStudentItems(u.Permissions)
	out := make([]navItem, 0, len(items))
	for _, item := range items {
		out = append(out, navItem{
			ID:    item.ID,
			Label: item.Label,
			Icon:  navigation.Icon(item.Icon),
			Route: item.Route,
		})
	}
	return c.JSON(http.StatusOK, studentNavigationResponse{Items: out})
}

func toNavCategory(cat navigation.FilteredCategory) navCategory {
	out := navCategory{
		ID:    cat.ID,
		Title: cat.Title,
		Empty: cat.Empty,
	}
	if cat.Empty {
		out.Notice = emptyCategoryNotice
	}
	for _, grp := range cat.Groups {
		g := navGroup{Title: grp.Title}
		for _, item := range grp.Items {
			g.Items = append(g.Items, navItem{
				ID:    item.ID,
				Label: item.Label,
				Icon:  navigation.Icon(item.Icon),
				Route: item.Route,
			})
		}
		out.Groups = append(out.Groups, g)
	}
	return out
}
