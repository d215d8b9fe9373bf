package domain

import "time"

// ExportRow is a single row in a user's favorites export.
// It is a flat, display-ready view of one Favorite: the category is
// rendered with its singular label and the visited time is nil while unvisited.
type ExportRow struct {
	PlaceID   string
	PlaceName string
	Category  string
	Lat       float64
	Lon       float64
	Address   string
	Visited   bool
	VisitedAt *time.Time
	SavedAt   time.Time
}

// NewExportRow flattens f into an ExportRow.
// Unknown stored categories are exported by their raw key.
func NewExportRow(f Favorite) ExportRow {
	category := string(f.Place.Type)
	if info, ok := f.Place.Type.Info(); ok {
		category = info.SingularLabel()
	}
	return ExportRow{
		PlaceID:   f.Place.PlaceID,
		PlaceName: f.Place.Name,
		Category:  category,
		Lat:       f.Place.Lat,
		Lon:       f.Place.Lon,
		Address:   f.Place.Address,
		Visited:   f.Visited,
		VisitedAt: f.VisitedAt,
		SavedAt:   f.CreatedAt,
	}
}
