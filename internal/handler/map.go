package handler

import (
	"context"
	"net/http"
	"strconv"

	"clientmap-api/internal/mapview"
	"clientmap-api/internal/models"

	"github.com/gin-gonic/gin"
)

// MapService interface for dependency injection
type MapService interface {
	Map(ctx context.Context, q models.MapQuery) (*models.MapResult, error)
}

// MapHandler serves the map view-model as JSON and as an HTML page
type MapHandler struct {
	service  MapService
	composer *mapview.Composer
	apiKey   string
}

// NewMapHandler creates a new map handler. apiKey enables the Google Maps page.
func NewMapHandler(svc MapService, composer *mapview.Composer, apiKey string) *MapHandler {
	return &MapHandler{service: svc, composer: composer, apiKey: apiKey}
}

const pageTitle = "Mapa de Clientes"

// Map godoc
// @Summary      Map view
// @Description  Center, zoom and markers for the map, with navigation links and counters
// @Tags         map
// @Produce      json
// @Param        q            query     string  false  "search term"
// @Param        focus        query     int     false  "client id to center on"
// @Param        show_voided  query     bool    false  "include voided clients"
// @Param        only_active  query     bool    false  "only active clients, wins over show_voided"
// @Param        limit        query     int     false  "maximum number of markers"
// @Success      200  {object}  models.MapResult
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /map [get]
func (h *MapHandler) Map(c *gin.Context) {
	query, msg := parseMapQuery(c)
	if msg != "" {
		badRequest(c, msg)
		return
	}

	result, err := h.service.Map(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Page godoc
// @Summary      Map page
// @Description  Interactive map rendered with Google Maps, or Leaflet and OpenStreetMap when no API key is configured
// @Tags         map
// @Produce      html
// @Param        provider  query  string  false  "google or osm"
// @Success      200
// @Security     BearerAuth
// @Router       /map/page [get]
func (h *MapHandler) Page(c *gin.Context) {
	name := mapview.TemplateFor(c.Query("provider"), h.apiKey)
	page := mapview.Page{
		Title:  pageTitle,
		APIKey: h.apiKey,
		Legend: mapview.Legend,
		Result: models.MapResult{View: h.composer.Compose(nil, nil)},
	}

	query, msg := parseMapQuery(c)
	if msg != "" {
		page.Message = msg
		c.HTML(http.StatusBadRequest, name, page)
		return
	}

	result, err := h.service.Map(c.Request.Context(), query)
	if err != nil {
		status, msg := errorStatus(err)
		if status >= http.StatusInternalServerError {
			respondError(c, err)
			return
		}
		page.Message = msg
		c.HTML(status, name, page)
		return
	}

	page.Result = *result
	if result.Term != "" && len(result.View.Markers) == 0 {
		page.Message = "No se encontraron clientes para \"" + result.Term + "\""
	}
	c.HTML(http.StatusOK, name, page)
}

// parseMapQuery reads the map filters. A non-empty message means the request is invalid.
func parseMapQuery(c *gin.Context) (models.MapQuery, string) {
	q := models.MapQuery{Term: c.Query("q")}

	if raw := c.Query("focus"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return q, "query parameter 'focus' must be a positive integer"
		}
		q.FocusID = id
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return q, "query parameter 'limit' must be a positive integer"
		}
		q.Limit = limit
	}

	var ok bool
	if q.ShowVoided, ok = parseFlag(c.Query("show_voided")); !ok {
		return q, "query parameter 'show_voided' must be a boolean"
	}
	if q.OnlyActive, ok = parseFlag(c.Query("only_active")); !ok {
		return q, "query parameter 'only_active' must be a boolean"
	}
	return q, ""
}

// parseFlag accepts the strconv booleans plus "on" sent by HTML checkboxes. Empty means false.
func parseFlag(raw string) (bool, bool) {
	switch raw {
	case "":
		return false, true
	case "on":
		return true, true
	}
	v, err := strconv.ParseBool(raw)
	return v, err == nil
}
