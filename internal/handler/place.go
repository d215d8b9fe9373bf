package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/filter"
	"github.com/pkordes/kidmap/backend/internal/handler/gen"
	"github.com/pkordes/kidmap/backend/internal/mapview"
)

// ListCategories handles GET /api/categories.
// The table order is the display order of the filter panel.
func (s *Server) ListCategories(_ context.Context, _ gen.ListCategoriesRequestObject) (gen.ListCategoriesResponseObject, error) {
	cats := s.places.Categories()
	out := make(gen.ListCategories200JSONResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, gen.Category{
			Key:         gen.CategoryKey(c.Key),
			Label:       c.Label,
			Description: c.Description,
			Color:       c.Color,
			Icon:        c.Icon,
			Tag:         gen.TagPredicate{Key: c.Tag.Key, Value: c.Tag.Value},
		})
	}
	return out, nil
}

// GetMapConfig handles GET /api/map/config.
func (s *Server) GetMapConfig(_ context.Context, _ gen.GetMapConfigRequestObject) (gen.GetMapConfigResponseObject, error) {
	v := s.places.MapConfig()
	return gen.GetMapConfig200JSONResponse{
		Bounds: gen.BoundingBox{
			South: v.Bounds.South,
			West:  v.Bounds.West,
			North: v.Bounds.North,
			East:  v.Bounds.East,
		},
		Center:      gen.LatLon{Lat: v.CenterLat, Lon: v.CenterLon},
		Zoom:        v.Zoom,
		MaxZoom:     v.MaxZoom,
		TileUrl:     v.TileURL,
		Subdomains:  v.Subdomains,
		Attribution: v.Attribution,
	}, nil
}

// ListPlaces handles GET /api/places.
// Counts and search always cover the full list; only Places honours the filter.
func (s *Server) ListPlaces(ctx context.Context, req gen.ListPlacesRequestObject) (gen.ListPlacesResponseObject, error) {
	state, err := filterState(req.Params.Category)
	if err != nil {
		return gen.ListPlaces422JSONResponse{ValidationErrorJSONResponse: gen.ValidationErrorJSONResponse(validationBody(err))}, nil
	}

	var query string
	if req.Params.Q != nil {
		query = *req.Params.Q
	}

	res, err := s.places.Browse(ctx, state, query)
	if err != nil {
		if errors.Is(err, domain.ErrNetwork) {
			s.logger.WarnContext(ctx, "place fetch failed", "error", err)
			return gen.ListPlaces502JSONResponse{UpstreamErrorJSONResponse: gen.UpstreamErrorJSONResponse(upstreamBody())}, nil
		}
		return nil, err
	}

	counts := make(map[string]int, len(res.Counts))
	total := 0
	for k, n := range res.Counts {
		counts[string(k)] = n
		total += n
	}

	out := gen.ListPlaces200JSONResponse{
		Places: placesToResponse(res.Visible),
		Counts: counts,
		Total:  total,
	}
	if res.Search != nil {
		out.Search = &gen.SearchResult{
			Query:   res.Search.Query,
			Matches: placesToResponse(res.Search.Matches),
		}
	}
	return out, nil
}

// ListMarkers handles GET /api/places/markers.
func (s *Server) ListMarkers(ctx context.Context, req gen.ListMarkersRequestObject) (gen.ListMarkersResponseObject, error) {
	state, err := filterState(req.Params.Category)
	if err != nil {
		return gen.ListMarkers422JSONResponse{ValidationErrorJSONResponse: gen.ValidationErrorJSONResponse(validationBody(err))}, nil
	}

	markers, err := s.places.Markers(ctx, state)
	if err != nil {
		if errors.Is(err, domain.ErrNetwork) {
			s.logger.WarnContext(ctx, "place fetch failed", "error", err)
			return gen.ListMarkers502JSONResponse{UpstreamErrorJSONResponse: gen.UpstreamErrorJSONResponse(upstreamBody())}, nil
		}
		return nil, err
	}

	out := make(gen.ListMarkers200JSONResponse, 0, len(markers))
	for _, m := range markers {
		out = append(out, markerToResponse(m))
	}
	return out, nil
}

// filterState builds a filter.State from the repeated ?category= parameter.
// No parameter enables every category. Values may also be comma-separated;
// blank values are skipped, so a bare "?category=" enables none.
func filterState(param *gen.CategoryFilter) (filter.State, error) {
	if param == nil {
		return filter.NewState(), nil
	}
	var enabled []domain.Category
	for _, raw := range *param {
		for _, v := range strings.Split(raw, ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			c, err := domain.ParseCategory(v)
			if err != nil {
				return nil, fmt.Errorf("handler.filterState: %w", err)
			}
			enabled = append(enabled, c)
		}
	}
	return filter.StateFromEnabled(enabled), nil
}

func placesToResponse(places []domain.Place) []gen.Place {
	out := make([]gen.Place, 0, len(places))
	for _, p := range places {
		out = append(out, gen.Place{
			Id:          p.ID,
			ElementType: p.ElementType,
			Category:    gen.CategoryKey(p.Category),
			Name:        p.Name,
			Lat:         p.Lat,
			Lon:         p.Lon,
			Address:     optString(p.Address),
			Website:     optString(p.Website),
			Phone:       optString(p.Phone),
			Description: optString(p.Description),
		})
	}
	return out
}

func markerToResponse(m mapview.Marker) gen.Marker {
	actions := make([]gen.PopupAction, 0, len(m.Popup.Actions))
	for _, a := range m.Popup.Actions {
		actions = append(actions, gen.PopupAction{
			Command: gen.MapCommandName(a.Command),
			PlaceId: a.PlaceID,
			Label:   a.Label,
		})
	}
	return gen.Marker{
		PlaceId:  m.PlaceID,
		Category: gen.CategoryKey(m.Category),
		Lat:      m.Lat,
		Lon:      m.Lon,
		Color:    m.Color,
		Icon:     m.Icon,
		Popup: gen.Popup{
			Title:       m.Popup.Title,
			Category:    m.Popup.Category,
			Address:     optString(m.Popup.Address),
			Website:     optString(m.Popup.Website),
			Phone:       optString(m.Popup.Phone),
			Description: optString(m.Popup.Description),
			Actions:     actions,
		},
	}
}
