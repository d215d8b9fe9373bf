package overpass

import (
	"strconv"
	"strings"

	"github.com/pkordes/kidmap/backend/internal/domain"
)

// Element is a single node, way, or relation from an Overpass JSON response.
// Ways and relations carry Center instead of Lat/Lon when queried with "out center".
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Point            `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

// Point is a lat/lon pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Response is the top-level Overpass JSON document.
type Response struct {
	Version   float64   `json:"version"`
	Generator string    `json:"generator"`
	Elements  []Element `json:"elements"`
}

// Classify converts raw elements into Places, in source order.
// Elements without coordinates, or whose tags match no category, are dropped
// silently; they are not errors.
func Classify(elements []Element) []domain.Place {
	places := make([]domain.Place, 0, len(elements))
	for _, el := range elements {
		if p, ok := classifyElement(el); ok {
			places = append(places, p)
		}
	}
	return places
}

func classifyElement(el Element) (domain.Place, bool) {
	lat, lon, ok := coordinates(el)
	if !ok {
		return domain.Place{}, false
	}

	category, ok := domain.Classify(el.Tags)
	if !ok {
		return domain.Place{}, false
	}

	tags := el.Tags
	if tags == nil {
		tags = map[string]string{}
	}

	return domain.Place{
		ID:          strconv.FormatInt(el.ID, 10),
		ElementType: el.Type,
		Category:    category,
		Name:        displayName(tags, category),
		Lat:         lat,
		Lon:         lon,
		Address:     buildAddress(tags),
		Website:     tags["website"],
		Phone:       tags["phone"],
		Description: tags["description"],
		Tags:        tags,
	}, true
}

// coordinates prefers the element's own position and falls back to the
// centroid Overpass computes for way and relation geometries.
func coordinates(el Element) (lat, lon float64, ok bool) {
	if el.Lat != nil && el.Lon != nil {
		return *el.Lat, *el.Lon, true
	}
	if el.Center != nil {
		return el.Center.Lat, el.Center.Lon, true
	}
	return 0, 0, false
}

func displayName(tags map[string]string, c domain.Category) string {
	if name := strings.TrimSpace(tags["name"]); name != "" {
		return name
	}
	info, _ := c.Info()
	return "Unnamed " + info.SingularLabel()
}

// buildAddress joins house number, street, city, and postcode with spaces,
// skipping missing parts. It falls back to addr:full, then to "".
func buildAddress(tags map[string]string) string {
	var parts []string
	for _, key := range []string{"addr:housenumber", "addr:street", "addr:city", "addr:postcode"} {
		if v := tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	if addr := strings.Join(parts, " "); addr != "" {
		return addr
	}
	return tags["addr:full"]
}
