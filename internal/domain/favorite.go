package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlaceSnapshot is the copy of place data taken when a user saves a favorite.
// It is never refreshed: later fetches do not change a stored favorite.
type PlaceSnapshot struct {
	PlaceID string
	Name    string
	Type    Category
	Lat     float64
	Lon     float64
	Address string
}

// Favorite is a user's saved reference to a Place.
// At most one Favorite exists per (UserID, PlaceID).
// VisitedAt is non-nil exactly when Visited is true.
type Favorite struct {
	ID        uuid.UUID
	UserID    string
	Place     PlaceSnapshot
	Visited   bool
	VisitedAt *time.Time
	CreatedAt time.Time
}
