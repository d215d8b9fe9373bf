package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/pkordes/kidmap/backend/internal/auth"
	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/handler/gen"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"place_id", "place_name", "category", "lat", "lon",
	"address", "visited", "visited_at", "saved_at",
}

// ExportFavorites handles GET /api/favorites/export.
// It returns the caller's favorites as a downloadable file.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) ExportFavorites(ctx context.Context, req gen.ExportFavoritesRequestObject) (gen.ExportFavoritesResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.ExportFavorites401JSONResponse{UnauthorizedJSONResponse: gen.UnauthorizedJSONResponse(unauthorizedBody())}, nil
	}

	rows, err := s.favorites.Export(ctx, userID)
	if err != nil {
		return nil, err
	}

	wantCSV := req.Params.Format != nil && *req.Params.Format == gen.Csv
	if wantCSV {
		return buildCSVResponse(rows), nil
	}
	return buildJSONResponse(rows), nil
}

// buildJSONResponse converts domain rows to the typed JSON response.
func buildJSONResponse(rows []domain.ExportRow) gen.ExportFavorites200JSONResponse {
	out := make([]gen.ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, domainRowToGenRow(r))
	}
	return gen.ExportFavorites200JSONResponse{
		Body:    out,
		Headers: gen.ExportFavorites200ResponseHeaders{ContentDisposition: attachment("favorites.json")},
	}
}

// buildCSVResponse encodes domain rows as CSV and wraps in the streaming response type.
func buildCSVResponse(rows []domain.ExportRow) gen.ExportFavorites200TextcsvResponse {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(domainRowToCSVRecord(r))
	}
	w.Flush()

	return gen.ExportFavorites200TextcsvResponse{
		Body:          &buf,
		Headers:       gen.ExportFavorites200ResponseHeaders{ContentDisposition: attachment("favorites.csv")},
		ContentLength: int64(buf.Len()),
	}
}

func attachment(filename string) string {
	return `attachment; filename="` + filename + `"`
}

// domainRowToGenRow maps a domain.ExportRow to the generated gen.ExportRow type.
// An empty address becomes a nil pointer (omitempty in JSON).
func domainRowToGenRow(r domain.ExportRow) gen.ExportRow {
	return gen.ExportRow{
		PlaceId:   r.PlaceID,
		PlaceName: r.PlaceName,
		Category:  r.Category,
		Lat:       r.Lat,
		Lon:       r.Lon,
		Address:   optString(r.Address),
		Visited:   r.Visited,
		VisitedAt: r.VisitedAt,
		SavedAt:   r.SavedAt,
	}
}

// domainRowToCSVRecord encodes a domain.ExportRow as a flat string slice.
// Nil time pointers are encoded as empty strings.
func domainRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		r.PlaceID,
		r.PlaceName,
		r.Category,
		formatCoord(r.Lat),
		formatCoord(r.Lon),
		r.Address,
		strconv.FormatBool(r.Visited),
		formatOptionalTime(r.VisitedAt),
		r.SavedAt.UTC().Format(time.RFC3339),
	}
}

// formatOptionalTime returns the RFC3339 representation of t, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
