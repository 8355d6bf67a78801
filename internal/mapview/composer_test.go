package mapview

import (
	"testing"

	"clientmap-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coord(v float64) *float64 { return &v }

func located(id int64, name string, lat, lon float64, voided bool) models.Client {
	return models.Client{
		ID:         id,
		Name:       name,
		LegalName:  name + " S.A.",
		Address:    "Av. Principal 123",
		Identifier: "EMP00" + string(rune('0'+id)),
		CoordX:     coord(lon),
		CoordY:     coord(lat),
		Voided:     voided,
	}
}

func TestCompose_NoFocus(t *testing.T) {
	composer := NewComposer(Options{})
	records := []models.Client{
		located(1, "Empresa A", -12.0464, -77.0428, false),
		located(2, "Empresa B", -12.0544, -77.0344, true),
	}

	view := composer.Compose(records, nil)

	assert.Equal(t, models.Point{Lat: DefaultCenterLat, Lon: DefaultCenterLon}, view.Center)
	assert.Equal(t, 11, view.Zoom)
	require.Len(t, view.Markers, 2)
	assert.Equal(t, models.StatusActive, view.Markers[0].Status)
	assert.Equal(t, models.StatusVoided, view.Markers[1].Status)
}

func TestCompose_WithFocus(t *testing.T) {
	composer := NewComposer(Options{})
	focus := located(2, "Empresa B", -12.05, -77.03, true)
	records := []models.Client{
		located(1, "Empresa A", -12.0464, -77.0428, false),
		focus,
		located(3, "Empresa C", -12.0624, -77.0264, false),
	}

	view := composer.Compose(records, &focus)

	assert.Equal(t, models.Point{Lat: -12.05, Lon: -77.03}, view.Center)
	assert.Equal(t, 15, view.Zoom)

	selected := 0
	for _, m := range view.Markers {
		if m.Status == models.StatusSelected {
			selected++
			assert.Equal(t, int64(2), m.ID)
		}
	}
	assert.Equal(t, 1, selected)
}

func TestCompose_MarkerContent(t *testing.T) {
	composer := NewComposer(Options{})
	r := located(1, "Empresa A", -12.0464, -77.0428, false)

	view := composer.Compose([]models.Client{r}, nil)

	require.Len(t, view.Markers, 1)
	m := view.Markers[0]
	assert.Equal(t, -12.0464, m.Lat)
	assert.Equal(t, -77.0428, m.Lon)
	assert.Equal(t, "EMP001 - Empresa A", m.Title)
	assert.Equal(t, "Empresa A S.A.", m.LegalName)
	assert.Equal(t, "Av. Principal 123", m.Address)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=-12.0464,-77.0428", m.SearchURL)
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=-12.0464,-77.0428", m.DirectionsURL)
	assert.Equal(t, "https://waze.com/ul?ll=-12.0464,-77.0428&navigate=yes", m.WazeURL)
}

func TestCompose_SkipsUnmappableAndKeepsDuplicates(t *testing.T) {
	composer := NewComposer(Options{})
	records := []models.Client{
		located(1, "A", -12.05, -77.03, false),
		located(2, "B", -12.05, -77.03, false),
		{ID: 3, Name: "No coords"},
		{ID: 4, Name: "Zero", CoordX: coord(0), CoordY: coord(-12.05)},
	}

	view := composer.Compose(records, nil)

	require.Len(t, view.Markers, 2)
	assert.Equal(t, view.Markers[0].Lat, view.Markers[1].Lat)
	assert.Equal(t, view.Markers[0].Lon, view.Markers[1].Lon)
}

func TestCompose_CustomOptions(t *testing.T) {
	composer := NewComposer(Options{
		Center:      models.Point{Lat: -12.0464, Lon: -77.0428},
		DefaultZoom: 10,
		FocusZoom:   17,
	})

	view := composer.Compose(nil, nil)
	assert.Equal(t, models.Point{Lat: -12.0464, Lon: -77.0428}, view.Center)
	assert.Equal(t, 10, view.Zoom)
	assert.NotNil(t, view.Markers)
	assert.Empty(t, view.Markers)

	focus := located(1, "A", -3.5, -73.1, false)
	view = composer.Compose([]models.Client{focus}, &focus)
	assert.Equal(t, 17, view.Zoom)
}

func TestCompose_UnmappableFocusKeepsFallback(t *testing.T) {
	composer := NewComposer(Options{})
	focus := models.Client{ID: 9, Name: "No coords"}

	view := composer.Compose(nil, &focus)

	assert.Equal(t, models.Point{Lat: DefaultCenterLat, Lon: DefaultCenterLon}, view.Center)
	assert.Equal(t, DefaultZoom, view.Zoom)
}
