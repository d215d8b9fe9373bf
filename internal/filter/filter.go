// Package filter holds the category filter and name/address search applied
// to a classified place list. Everything here is a pure function of its
// inputs: no I/O, no locking, no suspension.
package filter

import (
	"strings"

	"github.com/pkordes/kidmap/backend/internal/domain"
)

// State maps a category to whether its places are visible.
// A category with no key is treated as off wherever a State is read.
type State map[domain.Category]bool

// NewState returns the initial state: every category in the table switched on.
func NewState() State {
	s := make(State, len(domain.Categories()))
	for _, c := range domain.Categories() {
		s[c.Key] = true
	}
	return s
}

// StateFromEnabled returns a State with exactly the given categories on and
// every other table category off.
func StateFromEnabled(enabled []domain.Category) State {
	s := make(State, len(domain.Categories()))
	for _, c := range domain.Categories() {
		s[c.Key] = false
	}
	for _, c := range enabled {
		s[c] = true
	}
	return s
}

// Enabled reports whether c is visible. Absent keys are off.
func (s State) Enabled(c domain.Category) bool {
	return s[c]
}

// Toggle returns a copy of s with exactly c flipped. s itself is unchanged.
func (s State) Toggle(c domain.Category) State {
	next := make(State, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[c] = !s[c]
	return next
}

// VisiblePlaces returns the places whose category is enabled in s, in input order.
func VisiblePlaces(all []domain.Place, s State) []domain.Place {
	visible := make([]domain.Place, 0, len(all))
	for _, p := range all {
		if s.Enabled(p.Category) {
			visible = append(visible, p)
		}
	}
	return visible
}

// CountByCategory counts places of category c in the full, unfiltered list.
// The count does not depend on any filter state.
func CountByCategory(all []domain.Place, c domain.Category) int {
	n := 0
	for _, p := range all {
		if p.Category == c {
			n++
		}
	}
	return n
}

// Counts returns CountByCategory for every table category.
func Counts(all []domain.Place) map[domain.Category]int {
	counts := make(map[domain.Category]int, len(domain.Categories()))
	for _, c := range domain.Categories() {
		counts[c.Key] = 0
	}
	for _, p := range all {
		if _, ok := counts[p.Category]; ok {
			counts[p.Category]++
		}
	}
	return counts
}

// SearchMatches returns places whose name or address contains query,
// case-insensitively, in input order. shown is false for a blank query:
// no search section is displayed, which differs from "everything matches".
// A place without an address never matches on address.
func SearchMatches(all []domain.Place, query string) (matches []domain.Place, shown bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}
	matches = []domain.Place{}
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			(p.Address != "" && strings.Contains(strings.ToLower(p.Address), q)) {
			matches = append(matches, p)
		}
	}
	return matches, true
}

// Result is a filtered view over one fetched place list.
type Result struct {
	// Visible holds the places that pass the category filter.
	Visible []domain.Place
	// Counts holds totals per category over the unfiltered list.
	Counts map[domain.Category]int
	// Search is nil when no query was given.
	Search *SearchResult
}

// SearchResult is the outcome of a non-blank search.
type SearchResult struct {
	Query   string
	Matches []domain.Place
}

// Apply runs the category filter, the per-category counts, and the search
// over all. Search runs over the full list, independent of the filter.
func Apply(all []domain.Place, s State, query string) Result {
	res := Result{
		Visible: VisiblePlaces(all, s),
		Counts:  Counts(all),
	}
	if matches, shown := SearchMatches(all, query); shown {
		res.Search = &SearchResult{Query: strings.TrimSpace(query), Matches: matches}
	}
	return res
}
