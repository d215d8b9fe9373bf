package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/repo"
)

// FavoriteService implements business logic for a user's saved places.
type FavoriteService struct {
	repo repo.FavoriteRepo
}

// NewFavoriteService constructs a FavoriteService backed by the provided FavoriteRepo.
func NewFavoriteService(r repo.FavoriteRepo) *FavoriteService {
	return &FavoriteService{repo: r}
}

// List returns the user's favorites, oldest first.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	if err := requireUser(userID); err != nil {
		return nil, fmt.Errorf("service.FavoriteService.List: %w", err)
	}
	favs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.FavoriteService.List: %w", err)
	}
	return favs, nil
}

// Add validates the snapshot and saves it. created is false when the user
// already had this place saved, in which case the stored favorite is returned unchanged.
func (s *FavoriteService) Add(ctx context.Context, userID string, place domain.PlaceSnapshot) (fav domain.Favorite, created bool, err error) {
	if err := requireUser(userID); err != nil {
		return domain.Favorite{}, false, fmt.Errorf("service.FavoriteService.Add: %w", err)
	}
	place = normalizeSnapshot(place)
	if err := validateSnapshot(place); err != nil {
		return domain.Favorite{}, false, fmt.Errorf("service.FavoriteService.Add: %w", err)
	}
	fav, created, err = s.repo.Add(ctx, userID, place)
	if err != nil {
		return domain.Favorite{}, false, fmt.Errorf("service.FavoriteService.Add: %w", err)
	}
	return fav, created, nil
}

// Remove deletes the user's favorite for placeID. It succeeds when there is nothing to delete.
func (s *FavoriteService) Remove(ctx context.Context, userID, placeID string) error {
	if err := requireUser(userID); err != nil {
		return fmt.Errorf("service.FavoriteService.Remove: %w", err)
	}
	if err := s.repo.Remove(ctx, userID, placeID); err != nil {
		return fmt.Errorf("service.FavoriteService.Remove: %w", err)
	}
	return nil
}

// IsFavorite reports whether the user has saved placeID.
func (s *FavoriteService) IsFavorite(ctx context.Context, userID, placeID string) (bool, error) {
	if err := requireUser(userID); err != nil {
		return false, fmt.Errorf("service.FavoriteService.IsFavorite: %w", err)
	}
	ok, err := s.repo.Exists(ctx, userID, placeID)
	if err != nil {
		return false, fmt.Errorf("service.FavoriteService.IsFavorite: %w", err)
	}
	return ok, nil
}

// ToggleVisited flips the visited flag of an existing favorite.
// Returns a wrapped domain.ErrNotFound when the place is not a favorite.
func (s *FavoriteService) ToggleVisited(ctx context.Context, userID, placeID string) (domain.Favorite, error) {
	if err := requireUser(userID); err != nil {
		return domain.Favorite{}, fmt.Errorf("service.FavoriteService.ToggleVisited: %w", err)
	}
	fav, err := s.repo.ToggleVisited(ctx, userID, placeID)
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("service.FavoriteService.ToggleVisited: %w", err)
	}
	return fav, nil
}

// ToggleFavorite removes the favorite for placeID if the user has one, and
// otherwise saves snap. It returns the saved favorite, or nil after a removal.
// snap is required only when the place is not yet a favorite.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, userID, placeID string, snap *domain.PlaceSnapshot) (*domain.Favorite, error) {
	exists, err := s.IsFavorite(ctx, userID, placeID)
	if err != nil {
		return nil, fmt.Errorf("service.FavoriteService.ToggleFavorite: %w", err)
	}
	if exists {
		if err := s.Remove(ctx, userID, placeID); err != nil {
			return nil, fmt.Errorf("service.FavoriteService.ToggleFavorite: %w", err)
		}
		return nil, nil
	}

	if snap == nil {
		return nil, fmt.Errorf("service.FavoriteService.ToggleFavorite: %w: place details are required to save a favorite", domain.ErrValidation)
	}
	place := *snap
	place.PlaceID = placeID
	fav, _, err := s.Add(ctx, userID, place)
	if err != nil {
		return nil, fmt.Errorf("service.FavoriteService.ToggleFavorite: %w", err)
	}
	return &fav, nil
}

// Export returns one flat row per favorite, in list order.
func (s *FavoriteService) Export(ctx context.Context, userID string) ([]domain.ExportRow, error) {
	favs, err := s.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.FavoriteService.Export: %w", err)
	}
	rows := make([]domain.ExportRow, 0, len(favs))
	for _, f := range favs {
		rows = append(rows, domain.NewExportRow(f))
	}
	return rows, nil
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.ErrUnauthenticated
	}
	return nil
}

func normalizeSnapshot(p domain.PlaceSnapshot) domain.PlaceSnapshot {
	p.PlaceID = strings.TrimSpace(p.PlaceID)
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	return p
}

func validateSnapshot(p domain.PlaceSnapshot) error {
	switch {
	case p.PlaceID == "":
		return fmt.Errorf("%w: placeId is required", domain.ErrValidation)
	case p.Name == "":
		return fmt.Errorf("%w: placeName is required", domain.ErrValidation)
	case !p.Type.Valid():
		return fmt.Errorf("%w: unknown placeType %q", domain.ErrValidation, p.Type)
	case math.IsNaN(p.Lat) || p.Lat < -90 || p.Lat > 90:
		return fmt.Errorf("%w: placeLat out of range", domain.ErrValidation)
	case math.IsNaN(p.Lon) || p.Lon < -180 || p.Lon > 180:
		return fmt.Errorf("%w: placeLon out of range", domain.ErrValidation)
	}
	return nil
}
