package domain

// Place is a point of interest fetched from the geodata service and
// classified into one of the fixed categories. Places are rebuilt on every
// fetch and never mutated afterwards.
type Place struct {
	// ID is the source element id in decimal. It is stable per element and
	// is what favorites reference as place id.
	ID string
	// ElementType is the source geometry kind: node, way, or relation.
	ElementType string
	Category    Category
	Name        string
	Lat         float64
	Lon         float64
	Address     string
	Website     string
	Phone       string
	Description string
	Tags        map[string]string
}

// Snapshot returns the denormalized fields a Favorite stores at save time.
func (p Place) Snapshot() PlaceSnapshot {
	return PlaceSnapshot{
		PlaceID: p.ID,
		Name:    p.Name,
		Type:    p.Category,
		Lat:     p.Lat,
		Lon:     p.Lon,
		Address: p.Address,
	}
}

// BoundingBox is a lat/lon rectangle.
type BoundingBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// RegionBounds is the fixed region every place query covers (Hudson County, NJ).
var RegionBounds = BoundingBox{
	South: 40.6983,
	West:  -74.0833,
	North: 40.7834,
	East:  -74.0160,
}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() (lat, lon float64) {
	return (b.South + b.North) / 2, (b.West + b.East) / 2
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.South && lat <= b.North && lon >= b.West && lon <= b.East
}
