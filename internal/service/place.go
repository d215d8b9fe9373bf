// Package service contains the business logic for the kid-friendly places API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// fetcher calls. No SQL lives here; services depend on interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/filter"
	"github.com/pkordes/kidmap/backend/internal/mapview"
)

// PlaceFetcher loads every classified place in the region.
// *overpass.Client satisfies it.
type PlaceFetcher interface {
	Fetch(ctx context.Context) ([]domain.Place, error)
}

// PlaceService serves the classified place list and the views derived from it.
// A successful fetch is reused for ttl; failed fetches are never cached.
// Concurrent callers that miss the cache share a single upstream request.
type PlaceService struct {
	fetcher PlaceFetcher
	ttl     time.Duration
	now     func() time.Time
	group   singleflight.Group

	mu        sync.RWMutex
	places    []domain.Place
	fetchedAt time.Time
}

// NewPlaceService constructs a PlaceService. A ttl of zero disables caching.
func NewPlaceService(f PlaceFetcher, ttl time.Duration) *PlaceService {
	return &PlaceService{fetcher: f, ttl: ttl, now: time.Now}
}

// Places returns the full classified list in fetch order.
// Upstream failures surface as a wrapped domain.ErrNetwork.
func (s *PlaceService) Places(ctx context.Context) ([]domain.Place, error) {
	if places, ok := s.cached(); ok {
		return places, nil
	}

	// The shared fetch must outlive any single caller's cancellation;
	// the fetcher's own HTTP timeout bounds it.
	shared := context.WithoutCancel(ctx)
	ch := s.group.DoChan("places", func() (any, error) {
		places, err := s.fetcher.Fetch(shared)
		if err != nil {
			return nil, err
		}
		s.store(places)
		return places, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("service.PlaceService.Places: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("service.PlaceService.Places: %w", res.Err)
		}
		return res.Val.([]domain.Place), nil
	}
}

// Browse applies the filter state and search query to the full list.
func (s *PlaceService) Browse(ctx context.Context, state filter.State, query string) (filter.Result, error) {
	all, err := s.Places(ctx)
	if err != nil {
		return filter.Result{}, err
	}
	return filter.Apply(all, state, query), nil
}

// Markers returns map markers for the places visible under state.
func (s *PlaceService) Markers(ctx context.Context, state filter.State) ([]mapview.Marker, error) {
	all, err := s.Places(ctx)
	if err != nil {
		return nil, err
	}
	return mapview.Markers(filter.VisiblePlaces(all, state)), nil
}

// Find returns the place with the given id.
// Returns domain.ErrNotFound if the current list has no such place.
func (s *PlaceService) Find(ctx context.Context, placeID string) (domain.Place, error) {
	all, err := s.Places(ctx)
	if err != nil {
		return domain.Place{}, err
	}
	for _, p := range all {
		if p.ID == placeID {
			return p, nil
		}
	}
	return domain.Place{}, fmt.Errorf("service.PlaceService.Find: %w: place %q", domain.ErrNotFound, placeID)
}

// Categories returns the category table.
func (s *PlaceService) Categories() []domain.CategoryInfo {
	return domain.Categories()
}

// MapConfig returns the static map framing.
func (s *PlaceService) MapConfig() mapview.View {
	return mapview.DefaultView()
}

func (s *PlaceService) cached() ([]domain.Place, bool) {
	if s.ttl <= 0 {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.places == nil || s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil, false
	}
	return s.places, true
}

func (s *PlaceService) store(places []domain.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = places
	s.fetchedAt = s.now()
}
