// Package mapview builds what the map component draws: one marker per place,
// styled from the category table, with popup content and the actions the
// popup offers. Actions are plain data (command + place id). The client sends
// them back through the command endpoint, where a Dispatcher routes them;
// nothing is exposed through global callbacks.
package mapview

import (
	"github.com/pkordes/kidmap/backend/internal/domain"
)

// Command names a popup action.
type Command string

const (
	CommandToggleFavorite Command = "toggle-favorite"
	CommandToggleVisited  Command = "toggle-visited"
)

// Action is a button in a marker popup.
type Action struct {
	Command Command
	PlaceID string
	Label   string
}

// Popup is the text content of a marker popup.
type Popup struct {
	Title       string
	Category    string
	Address     string
	Website     string
	Phone       string
	Description string
	Actions     []Action
}

// Marker is a single map pin.
type Marker struct {
	PlaceID  string
	Category domain.Category
	Lat      float64
	Lon      float64
	Color    string
	Icon     string
	Popup    Popup
}

// View holds the static map framing: region bounds, initial center and zoom,
// and the raster tile source.
type View struct {
	Bounds      domain.BoundingBox
	CenterLat   float64
	CenterLon   float64
	Zoom        int
	MaxZoom     int
	TileURL     string
	Subdomains  string
	Attribution string
}

// DefaultView frames the fixed region on Carto light tiles.
func DefaultView() View {
	return View{
		Bounds:      domain.RegionBounds,
		CenterLat:   40.7388,
		CenterLon:   -74.0459,
		Zoom:        12,
		MaxZoom:     18,
		TileURL:     "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
		Subdomains:  "abcd",
		Attribution: "© OpenStreetMap contributors © CARTO",
	}
}

// Markers returns one marker per place, in input order. Places whose
// category is not in the table get no marker.
func Markers(places []domain.Place) []Marker {
	markers := make([]Marker, 0, len(places))
	for _, p := range places {
		info, ok := p.Category.Info()
		if !ok {
			continue
		}
		markers = append(markers, Marker{
			PlaceID:  p.ID,
			Category: p.Category,
			Lat:      p.Lat,
			Lon:      p.Lon,
			Color:    info.Color,
			Icon:     info.Icon,
			Popup: Popup{
				Title:       p.Name,
				Category:    info.SingularLabel(),
				Address:     p.Address,
				Website:     p.Website,
				Phone:       p.Phone,
				Description: p.Description,
				Actions:     popupActions(p.ID),
			},
		})
	}
	return markers
}

func popupActions(placeID string) []Action {
	return []Action{
		{Command: CommandToggleFavorite, PlaceID: placeID, Label: "Favorite"},
		{Command: CommandToggleVisited, PlaceID: placeID, Label: "Visited"},
	}
}
