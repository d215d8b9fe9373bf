package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/pkordes/kidmap/backend/internal/auth"
	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/handler/gen"
)

// ListFavorites handles GET /api/favorites.
func (s *Server) ListFavorites(ctx context.Context, _ gen.ListFavoritesRequestObject) (gen.ListFavoritesResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.ListFavorites401JSONResponse{UnauthorizedJSONResponse: gen.UnauthorizedJSONResponse(unauthorizedBody())}, nil
	}

	favs, err := s.favorites.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make(gen.ListFavorites200JSONResponse, 0, len(favs))
	for _, f := range favs {
		out = append(out, favoriteToResponse(f))
	}
	return out, nil
}

// AddFavorite handles POST /api/favorites.
// A new favorite answers 201; re-adding an existing one answers 200 with the stored record.
func (s *Server) AddFavorite(ctx context.Context, req gen.AddFavoriteRequestObject) (gen.AddFavoriteResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.AddFavorite401JSONResponse{UnauthorizedJSONResponse: gen.UnauthorizedJSONResponse(unauthorizedBody())}, nil
	}

	snap, err := requestToSnapshot(*req.Body)
	if err != nil {
		return gen.AddFavorite422JSONResponse{ValidationErrorJSONResponse: gen.ValidationErrorJSONResponse(requestBody(err.Error()))}, nil
	}

	fav, created, err := s.favorites.Add(ctx, userID, snap)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.AddFavorite422JSONResponse{ValidationErrorJSONResponse: gen.ValidationErrorJSONResponse(validationBody(err))}, nil
		}
		return nil, err
	}

	if created {
		return gen.AddFavorite201JSONResponse(favoriteToResponse(fav)), nil
	}
	return gen.AddFavorite200JSONResponse(favoriteToResponse(fav)), nil
}

// RemoveFavorite handles DELETE /api/favorites/{placeId}.
// Removing a place that is not a favorite still reports success.
func (s *Server) RemoveFavorite(ctx context.Context, req gen.RemoveFavoriteRequestObject) (gen.RemoveFavoriteResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.RemoveFavorite401JSONResponse{UnauthorizedJSONResponse: gen.UnauthorizedJSONResponse(unauthorizedBody())}, nil
	}

	if err := s.favorites.Remove(ctx, userID, req.PlaceId); err != nil {
		return nil, err
	}
	return gen.RemoveFavorite200JSONResponse{Success: true}, nil
}

// CheckFavorite handles GET /api/favorites/{placeId}/check.
func (s *Server) CheckFavorite(ctx context.Context, req gen.CheckFavoriteRequestObject) (gen.CheckFavoriteResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.CheckFavorite401JSONResponse{UnauthorizedJSONResponse: gen.UnauthorizedJSONResponse(unauthorizedBody())}, nil
	}

	isFav, err := s.favorites.IsFavorite(ctx, userID, req.PlaceId)
	if err != nil {
		return nil, err
	}
	return gen.CheckFavorite200JSONResponse{IsFavorite: isFav}, nil
}

// ToggleVisited handles PATCH /api/favorites/{placeId}/visited.
func (s *Server) ToggleVisited(ctx context.Context, req gen.ToggleVisitedRequestObject) (gen.ToggleVisitedResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.ToggleVisited401JSONResponse{UnauthorizedJSONResponse: gen.UnauthorizedJSONResponse(unauthorizedBody())}, nil
	}

	fav, err := s.favorites.ToggleVisited(ctx, userID, req.PlaceId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ToggleVisited404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody("favorite not found"))}, nil
		}
		return nil, err
	}
	return gen.ToggleVisited200JSONResponse(favoriteToResponse(fav)), nil
}

// requestToSnapshot converts the wire form of a favorite into a PlaceSnapshot.
// Coordinates travel as decimal strings and must parse as numbers.
func requestToSnapshot(b gen.NewFavorite) (domain.PlaceSnapshot, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(b.PlaceLat), 64)
	if err != nil {
		return domain.PlaceSnapshot{}, errors.New("placeLat must be a decimal number")
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(b.PlaceLon), 64)
	if err != nil {
		return domain.PlaceSnapshot{}, errors.New("placeLon must be a decimal number")
	}
	return domain.PlaceSnapshot{
		PlaceID: b.PlaceId,
		Name:    b.PlaceName,
		Type:    domain.Category(strings.TrimSpace(b.PlaceType)),
		Lat:     lat,
		Lon:     lon,
		Address: derefString(b.PlaceAddress),
	}, nil
}

// favoriteToResponse maps a domain.Favorite to the generated response type.
// Coordinates are rendered as strings and an empty address as null.
func favoriteToResponse(f domain.Favorite) gen.Favorite {
	return gen.Favorite{
		Id:           f.ID,
		UserId:       f.UserID,
		PlaceId:      f.Place.PlaceID,
		PlaceName:    f.Place.Name,
		PlaceType:    string(f.Place.Type),
		PlaceLat:     formatCoord(f.Place.Lat),
		PlaceLon:     formatCoord(f.Place.Lon),
		PlaceAddress: optString(f.Place.Address),
		Visited:      f.Visited,
		VisitedAt:    f.VisitedAt,
		CreatedAt:    f.CreatedAt,
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
