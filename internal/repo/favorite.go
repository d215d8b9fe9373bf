// Package repo contains all database access logic for the kid-friendly places API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/kidmap/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// FavoriteRepo defines the persistence operations for Favorites.
// Every operation is scoped to one user; a user can never see or change
// another user's favorites through this interface.
type FavoriteRepo interface {
	// ListByUser returns the user's favorites, oldest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error)

	// Add saves a favorite. If the user already has a favorite for the same
	// place, nothing is written and the existing record is returned with
	// created=false.
	Add(ctx context.Context, userID string, place domain.PlaceSnapshot) (fav domain.Favorite, created bool, err error)

	// GetByPlace returns the user's favorite for placeID.
	// Returns domain.ErrNotFound if there is none.
	GetByPlace(ctx context.Context, userID, placeID string) (domain.Favorite, error)

	// Remove deletes the user's favorite for placeID. Removing a favorite
	// that does not exist is not an error.
	Remove(ctx context.Context, userID, placeID string) error

	// Exists reports whether the user has a favorite for placeID.
	Exists(ctx context.Context, userID, placeID string) (bool, error)

	// ToggleVisited flips the visited flag in a single statement, setting
	// visited_at to now() when it becomes true and NULL when it becomes false.
	// Returns domain.ErrNotFound if there is no such favorite.
	ToggleVisited(ctx context.Context, userID, placeID string) (domain.Favorite, error)
}

// pgFavoriteRepo is the Postgres implementation of FavoriteRepo.
type pgFavoriteRepo struct {
	db db
}

// NewFavoriteRepo constructs a FavoriteRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewFavoriteRepo(db db) FavoriteRepo {
	return &pgFavoriteRepo{db: db}
}

const favoriteColumns = `id, user_id, place_id, place_name, place_type, place_lat, place_lon,
		       place_address, visited, visited_at, created_at`

// ListByUser returns all favorites for userID in the order they were saved.
func (r *pgFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	q := `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = @user_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	favs := []domain.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.FavoriteRepo.ListByUser: scan: %w", err)
		}
		favs = append(favs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.FavoriteRepo.ListByUser: rows: %w", err)
	}

	return favs, nil
}

// Add inserts a favorite row. ON CONFLICT DO NOTHING returns no row when the
// (user_id, place_id) pair already exists, in which case the stored row is read back.
func (r *pgFavoriteRepo) Add(ctx context.Context, userID string, place domain.PlaceSnapshot) (domain.Favorite, bool, error) {
	q := `
		INSERT INTO favorites (user_id, place_id, place_name, place_type, place_lat, place_lon, place_address)
		VALUES (@user_id, @place_id, @place_name, @place_type, @place_lat, @place_lon, @place_address)
		ON CONFLICT (user_id, place_id) DO NOTHING
		RETURNING ` + favoriteColumns

	args := pgx.NamedArgs{
		"user_id":       userID,
		"place_id":      place.PlaceID,
		"place_name":    place.Name,
		"place_type":    string(place.Type),
		"place_lat":     place.Lat,
		"place_lon":     place.Lon,
		"place_address": pgtype.Text{String: place.Address, Valid: place.Address != ""},
	}

	fav, err := scanFavorite(r.db.QueryRow(ctx, q, args))
	if err == nil {
		return fav, true, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Favorite{}, false, fmt.Errorf("repo.FavoriteRepo.Add: %w", err)
	}

	existing, err := r.GetByPlace(ctx, userID, place.PlaceID)
	if err != nil {
		return domain.Favorite{}, false, fmt.Errorf("repo.FavoriteRepo.Add: existing: %w", err)
	}
	return existing, false, nil
}

// GetByPlace retrieves the user's favorite for one place.
func (r *pgFavoriteRepo) GetByPlace(ctx context.Context, userID, placeID string) (domain.Favorite, error) {
	q := `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = @user_id AND place_id = @place_id`

	fav, err := scanFavorite(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "place_id": placeID}))
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("repo.FavoriteRepo.GetByPlace: %w", err)
	}
	return fav, nil
}

// Remove deletes the user's favorite for placeID, if any.
func (r *pgFavoriteRepo) Remove(ctx context.Context, userID, placeID string) error {
	const q = `DELETE FROM favorites WHERE user_id = @user_id AND place_id = @place_id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "place_id": placeID}); err != nil {
		return fmt.Errorf("repo.FavoriteRepo.Remove: %w", err)
	}
	return nil
}

// Exists reports whether a favorite row exists for the pair.
func (r *pgFavoriteRepo) Exists(ctx context.Context, userID, placeID string) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1 FROM favorites WHERE user_id = @user_id AND place_id = @place_id
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "place_id": placeID}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.FavoriteRepo.Exists: %w", err)
	}
	return exists, nil
}

// ToggleVisited flips visited atomically. The CASE reads the pre-update value
// of visited, so visited_at follows the new state.
func (r *pgFavoriteRepo) ToggleVisited(ctx context.Context, userID, placeID string) (domain.Favorite, error) {
	q := `
		UPDATE favorites
		SET visited    = NOT visited,
		    visited_at = CASE WHEN visited THEN NULL ELSE now() END
		WHERE user_id = @user_id AND place_id = @place_id
		RETURNING ` + favoriteColumns

	fav, err := scanFavorite(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID, "place_id": placeID}))
	if err != nil {
		return domain.Favorite{}, fmt.Errorf("repo.FavoriteRepo.ToggleVisited: %w", err)
	}
	return fav, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanFavorite maps a single favorites row into a domain.Favorite.
// It handles the UUID, nullable address, and nullable visited_at conversions.
func scanFavorite(s scanner) (domain.Favorite, error) {
	var (
		f         domain.Favorite
		id        pgtype.UUID
		placeType string
		address   pgtype.Text
		visitedAt pgtype.Timestamptz
	)

	err := s.Scan(
		&id, &f.UserID, &f.Place.PlaceID, &f.Place.Name, &placeType,
		&f.Place.Lat, &f.Place.Lon, &address, &f.Visited, &visitedAt, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Favorite{}, domain.ErrNotFound
		}
		return domain.Favorite{}, err
	}

	f.ID = uuid.UUID(id.Bytes)
	f.Place.Type = domain.Category(placeType)
	f.Place.Address = address.String
	if visitedAt.Valid {
		va := visitedAt.Time
		f.VisitedAt = &va
	}

	return f, nil
}
