package mapview

import (
	"embed"
	"html/template"
	"strings"

	"clientmap-api/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Map rendering providers.
const (
	ProviderGoogle = "google"
	ProviderOSM    = "osm"
)

// Template names registered by Templates.
const (
	GoogleTemplate = "google.html"
	OSMTemplate    = "osm.html"
)

// Page is the data handed to the map templates.
type Page struct {
	Title   string
	APIKey  string
	Result  models.MapResult
	Legend  []LegendEntry
	Message string
}

// LegendEntry explains one marker color.
type LegendEntry struct {
	Status string
	Label  string
	Color  string
}

// Legend lists the marker colors used by both providers.
var Legend = []LegendEntry{
	{Status: models.StatusActive, Label: "Activo", Color: "#2e7d32"},
	{Status: models.StatusVoided, Label: "Anulado", Color: "#c62828"},
	{Status: models.StatusSelected, Label: "Seleccionado", Color: "#1565c0"},
}

// Templates parses the embedded map pages.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

// TemplateFor picks the page template. Google Maps needs an API key, OpenStreetMap does not.
func TemplateFor(provider, apiKey string) string {
	if strings.EqualFold(provider, ProviderOSM) || apiKey == "" {
		return OSMTemplate
	}
	return GoogleTemplate
}
