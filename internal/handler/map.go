package handler

import (
	"context"
	"errors"

	"github.com/pkordes/kidmap/backend/internal/auth"
	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/handler/gen"
	"github.com/pkordes/kidmap/backend/internal/mapview"
)

// RunMapCommand handles POST /api/map/commands, the endpoint popup buttons post to.
// When the body carries no place data and the place is not yet a favorite, a
// toggle-favorite looks the place up in the current place list so the favorite
// can still be created. Removing a favorite never touches the place list.
func (s *Server) RunMapCommand(ctx context.Context, req gen.RunMapCommandRequestObject) (gen.RunMapCommandResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.RunMapCommand401JSONResponse{UnauthorizedJSONResponse: gen.UnauthorizedJSONResponse(unauthorizedBody())}, nil
	}

	cmd := mapview.Request{
		Command: mapview.Command(req.Body.Command),
		UserID:  userID,
		PlaceID: req.Body.PlaceId,
	}

	switch {
	case req.Body.Place != nil:
		snap, err := requestToSnapshot(*req.Body.Place)
		if err != nil {
			return gen.RunMapCommand422JSONResponse{ValidationErrorJSONResponse: gen.ValidationErrorJSONResponse(requestBody(err.Error()))}, nil
		}
		cmd.Place = &snap
	case cmd.Command == mapview.CommandToggleFavorite:
		saved, err := s.favorites.IsFavorite(ctx, userID, cmd.PlaceID)
		if err != nil {
			return nil, err
		}
		if saved {
			// Removal needs no place data.
			break
		}
		p, err := s.places.Find(ctx, cmd.PlaceID)
		switch {
		case err == nil:
			snap := p.Snapshot()
			cmd.Place = &snap
		case errors.Is(err, domain.ErrNetwork):
			s.logger.WarnContext(ctx, "place fetch failed", "error", err)
			return gen.RunMapCommand502JSONResponse{UpstreamErrorJSONResponse: gen.UpstreamErrorJSONResponse(upstreamBody())}, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
	}

	res, err := s.commands.Dispatch(ctx, cmd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.RunMapCommand404JSONResponse{NotFoundJSONResponse: gen.NotFoundJSONResponse(notFoundBody("favorite not found"))}, nil
		case errors.Is(err, domain.ErrValidation):
			return gen.RunMapCommand422JSONResponse{ValidationErrorJSONResponse: gen.ValidationErrorJSONResponse(validationBody(err))}, nil
		}
		return nil, err
	}

	out := gen.RunMapCommand200JSONResponse{
		Command:    gen.MapCommandName(res.Command),
		PlaceId:    res.PlaceID,
		IsFavorite: res.IsFavorite,
	}
	if res.Favorite != nil {
		f := favoriteToResponse(*res.Favorite)
		out.Favorite = &f
	}
	return out, nil
}
