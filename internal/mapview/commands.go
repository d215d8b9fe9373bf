package mapview

import (
	"context"

	"github.com/pkordes/kidmap/backend/internal/domain"
)

// FavoriteToggler is the part of the favorites service popup actions use.
type FavoriteToggler interface {
	// ToggleFavorite removes the favorite if it exists, otherwise saves snap.
	// It returns the stored favorite, or nil after a removal.
	ToggleFavorite(ctx context.Context, userID, placeID string, snap *domain.PlaceSnapshot) (*domain.Favorite, error)
	ToggleVisited(ctx context.Context, userID, placeID string) (domain.Favorite, error)
}

// RegisterFavoriteCommands binds the popup favorite actions to favs.
func RegisterFavoriteCommands(d *Dispatcher, favs FavoriteToggler) {
	d.Register(CommandToggleFavorite, func(ctx context.Context, req Request) (Result, error) {
		fav, err := favs.ToggleFavorite(ctx, req.UserID, req.PlaceID, req.Place)
		if err != nil {
			return Result{}, err
		}
		return Result{IsFavorite: fav != nil, Favorite: fav}, nil
	})
	d.Register(CommandToggleVisited, func(ctx context.Context, req Request) (Result, error) {
		fav, err := favs.ToggleVisited(ctx, req.UserID, req.PlaceID)
		if err != nil {
			return Result{}, err
		}
		return Result{IsFavorite: true, Favorite: &fav}, nil
	})
}
