package models

// Marker status tags.
const (
	StatusActive   = "active"
	StatusVoided   = "voided"
	StatusSelected = "selected"
)

// Point is a geographic position.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Marker is one client pin on the map.
type Marker struct {
	ID            int64   `json:"id"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Title         string  `json:"title"`
	Client        string  `json:"client"`
	LegalName     string  `json:"legal_name"`
	Address       string  `json:"address"`
	Identifier    string  `json:"identifier"`
	Voided        bool    `json:"voided"`
	Status        string  `json:"status"`
	SearchURL     string  `json:"search_url"`
	DirectionsURL string  `json:"directions_url"`
	WazeURL       string  `json:"waze_url"`
}

// MapView is the renderable map descriptor.
type MapView struct {
	Center  Point    `json:"center"`
	Zoom    int      `json:"zoom"`
	Markers []Marker `json:"markers"`
}

// MapQuery carries the map page filters.
type MapQuery struct {
	Term       string
	FocusID    int64
	ShowVoided bool
	OnlyActive bool
	Limit      int
}

// MapResult is a composed view plus the counters shown next to the map.
type MapResult struct {
	View          MapView `json:"view"`
	Term          string  `json:"term,omitempty"`
	Focus         *Client `json:"focus,omitempty"`
	Matches       int     `json:"matches"`
	TotalMappable int     `json:"total_mappable"`
	Active        int     `json:"active"`
	Voided        int     `json:"voided"`
	Selected      int     `json:"selected"`
}
