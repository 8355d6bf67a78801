package models

import "time"

// Client is a single business record. CoordX holds the longitude and CoordY the latitude.
type Client struct {
	ID         int64     `json:"id"`
	Name       string    `json:"client"`
	LegalName  string    `json:"legal_name"`
	Address    string    `json:"address"`
	CoordX     *float64  `json:"coord_x"`
	CoordY     *float64  `json:"coord_y"`
	Identifier string    `json:"identifier"`
	Voided     bool      `json:"voided"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Mappable reports whether both coordinates are present and non-zero.
func (c Client) Mappable() bool {
	return c.CoordX != nil && c.CoordY != nil && *c.CoordX != 0 && *c.CoordY != 0
}

// Lat returns the latitude (Y axis). Callers check Mappable first.
func (c Client) Lat() float64 {
	if c.CoordY == nil {
		return 0
	}
	return *c.CoordY
}

// Lon returns the longitude (X axis).
func (c Client) Lon() float64 {
	if c.CoordX == nil {
		return 0
	}
	return *c.CoordX
}

// Stats summarizes the stored records.
type Stats struct {
	Total           int        `json:"total"`
	Active          int        `json:"active"`
	Voided          int        `json:"voided"`
	WithCoordinates int        `json:"with_coordinates"`
	Mappable        int        `json:"mappable"`
	LatestCreatedAt *time.Time `json:"latest_created_at,omitempty"`
}
