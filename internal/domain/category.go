// Package domain contains the core data types for the kid-friendly places API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (overpass, filter, repo, service, handler).
package domain

import (
	"fmt"
	"strings"
)

// Category is one of the six fixed kinds of place the application shows.
// The set is closed: anything the classifier cannot map to one of these is dropped.
type Category string

const (
	CategoryPlayground  Category = "playground"
	CategoryPark        Category = "park"
	CategoryMuseum      Category = "museum"
	CategoryGallery     Category = "gallery"
	CategoryScience     Category = "science"
	CategoryPlanetarium Category = "planetarium"
)

// TagPredicate matches a single OpenStreetMap key=value tag.
type TagPredicate struct {
	Key   string
	Value string
}

// Matches reports whether tags carries exactly this key=value pair.
func (p TagPredicate) Matches(tags map[string]string) bool {
	v, ok := tags[p.Key]
	return ok && v == p.Value
}

// String renders the predicate as "key=value".
func (p TagPredicate) String() string {
	return p.Key + "=" + p.Value
}

// CategoryInfo is the display metadata and source-tag predicate for a Category.
type CategoryInfo struct {
	Key         Category
	Label       string
	Description string
	Color       string
	Icon        string
	Tag         TagPredicate
}

// SingularLabel returns the label with its trailing plural "s" removed,
// e.g. "Museums" → "Museum". It is used to name places that have no name tag.
func (c CategoryInfo) SingularLabel() string {
	return strings.TrimSuffix(c.Label, "s")
}

// categoryTable is the single source of truth for classification, display,
// and default filter keys. Declaration order is classification priority:
// the first predicate that matches an element wins.
var categoryTable = []CategoryInfo{
	{
		Key:         CategoryPlayground,
		Label:       "Playgrounds",
		Description: "Outdoor play areas",
		Color:       "hsl(0, 0%, 100%)",
		Icon:        "🛝",
		Tag:         TagPredicate{Key: "leisure", Value: "playground"},
	},
	{
		Key:         CategoryPark,
		Label:       "Parks",
		Description: "Green spaces & recreation",
		Color:       "hsl(120, 70%, 35%)",
		Icon:        "🌳",
		Tag:         TagPredicate{Key: "leisure", Value: "park"},
	},
	{
		Key:         CategoryMuseum,
		Label:       "Museums",
		Description: "Educational exhibitions",
		Color:       "hsl(45, 100%, 50%)",
		Icon:        "🏛️",
		Tag:         TagPredicate{Key: "tourism", Value: "museum"},
	},
	{
		Key:         CategoryGallery,
		Label:       "Galleries",
		Description: "Art & cultural spaces",
		Color:       "hsl(320, 80%, 45%)",
		Icon:        "🖼️",
		Tag:         TagPredicate{Key: "tourism", Value: "gallery"},
	},
	{
		Key:         CategoryScience,
		Label:       "Science Centers",
		Description: "Interactive learning",
		Color:       "hsl(15, 85%, 55%)",
		Icon:        "🔬",
		Tag:         TagPredicate{Key: "amenity", Value: "science_center"},
	},
	{
		Key:         CategoryPlanetarium,
		Label:       "Planetariums",
		Description: "Space & astronomy",
		Color:       "hsl(280, 70%, 50%)",
		Icon:        "🌟",
		Tag:         TagPredicate{Key: "amenity", Value: "planetarium"},
	},
}

// Categories returns a copy of the category table in declaration order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// Info returns the table entry for c. ok is false for unknown categories.
func (c Category) Info() (info CategoryInfo, ok bool) {
	for _, ci := range categoryTable {
		if ci.Key == c {
			return ci, true
		}
	}
	return CategoryInfo{}, false
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	_, ok := c.Info()
	return ok
}

// ParseCategory converts a raw key into a Category.
// Returns a wrapped ErrValidation for anything outside the table.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
	}
	return c, nil
}

// Classify returns the first category, in table order, whose predicate matches tags.
// ok is false when no predicate matches.
func Classify(tags map[string]string) (c Category, ok bool) {
	for _, ci := range categoryTable {
		if ci.Tag.Matches(tags) {
			return ci.Key, true
		}
	}
	return "", false
}
