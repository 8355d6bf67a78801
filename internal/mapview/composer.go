package mapview

import (
	"fmt"
	"strconv"

	"clientmap-api/internal/models"
)

// Options configures a Composer. Zero values fall back to the defaults below.
type Options struct {
	Center      models.Point
	DefaultZoom int
	FocusZoom   int
}

// Default map framing, centered on Iquitos, Perú.
const (
	DefaultCenterLat = -3.7489894
	DefaultCenterLon = -73.2570029
	DefaultZoom      = 11
	FocusZoom        = 15
)

// Composer builds map views from client records.
type Composer struct {
	center      models.Point
	defaultZoom int
	focusZoom   int
}

// NewComposer creates a composer. A zero center means the default one.
func NewComposer(opts Options) *Composer {
	c := &Composer{
		center:      opts.Center,
		defaultZoom: opts.DefaultZoom,
		focusZoom:   opts.FocusZoom,
	}
	if c.center == (models.Point{}) {
		c.center = models.Point{Lat: DefaultCenterLat, Lon: DefaultCenterLon}
	}
	if c.defaultZoom <= 0 {
		c.defaultZoom = DefaultZoom
	}
	if c.focusZoom <= 0 {
		c.focusZoom = FocusZoom
	}
	return c
}

// Compose centers the view on focus when given and emits one marker per mappable record.
// Records sharing a location produce stacked markers.
func (c *Composer) Compose(records []models.Client, focus *models.Client) models.MapView {
	view := models.MapView{
		Center:  c.center,
		Zoom:    c.defaultZoom,
		Markers: make([]models.Marker, 0, len(records)),
	}
	if focus != nil && focus.Mappable() {
		view.Center = models.Point{Lat: focus.Lat(), Lon: focus.Lon()}
		view.Zoom = c.focusZoom
	}

	for _, r := range records {
		if !r.Mappable() {
			continue
		}
		view.Markers = append(view.Markers, newMarker(r, focus))
	}
	return view
}

func newMarker(r models.Client, focus *models.Client) models.Marker {
	lat, lon := r.Lat(), r.Lon()

	status := models.StatusActive
	if r.Voided {
		status = models.StatusVoided
	}
	if focus != nil && focus.ID == r.ID {
		status = models.StatusSelected
	}

	return models.Marker{
		ID:            r.ID,
		Lat:           lat,
		Lon:           lon,
		Title:         fmt.Sprintf("%s - %s", r.Identifier, r.Name),
		Client:        r.Name,
		LegalName:     r.LegalName,
		Address:       r.Address,
		Identifier:    r.Identifier,
		Voided:        r.Voided,
		Status:        status,
		SearchURL:     SearchURL(lat, lon),
		DirectionsURL: DirectionsURL(lat, lon),
		WazeURL:       WazeURL(lat, lon),
	}
}

func latLon(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}

// SearchURL opens the location in Google Maps.
func SearchURL(lat, lon float64) string {
	return "https://www.google.com/maps/search/?api=1&query=" + latLon(lat, lon)
}

// DirectionsURL starts Google Maps turn-by-turn navigation to the location.
func DirectionsURL(lat, lon float64) string {
	return "https://www.google.com/maps/dir/?api=1&destination=" + latLon(lat, lon)
}

// WazeURL starts Waze navigation to the location.
func WazeURL(lat, lon float64) string {
	return "https://waze.com/ul?ll=" + latLon(lat, lon) + "&navigate=yes"
}
