package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orientavoc/orientation-platform/internal/infrastructure/upstream"
)

// CatalogHandler proxies the browse endpoints students use to explore the
// platform's career and institution catalogs. The upstream client handles
// bearer attachment, token rotation and fault signalling.
type CatalogHandler struct {
	upstream *upstream.Client
}

func NewCatalogHandler(client *upstream.Client) *CatalogHandler {
	return &CatalogHandler{upstream: client}
}

// Careers lists the browsable careers.
//
// @Summary      Browse careers
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /app/student/careers [get]
func (h *CatalogHandler) Careers(c echo.Context) error {
	_, sessionID, err := ctxSession(c)
	if err != nil {
		return err
	}

	var careers []map[string]any
	if err := h.upstream.GetJSON(c.Request().Context(), sessionID, "/careers", &careers); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, careers)
}

// Institutions lists the browsable institutions.
//
// @Summary      Browse institutions
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /app/student/institutions [get]
func (h *CatalogHandler) Institutions(c echo.Context) error {
	_, sessionID, err := ctxSession(c)
	if err != nil {
		return err
	}

	var institutions []map[string]any
	if err := h.upstream.GetJSON(c.Request().Context(), sessionID, "/institutions", &institutions); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, institutions)
}
