package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/kidmap/backend/internal/domain"
)

// UserRepo defines the persistence operations for Users.
type UserRepo interface {
	// GetByID retrieves a user by the identity provider's subject id.
	// Returns domain.ErrNotFound if no such user exists.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// Upsert inserts the user, or overwrites the profile fields of an existing
	// user with the same id and bumps updated_at.
	Upsert(ctx context.Context, u domain.User) (domain.User, error)
}

type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

func (r *pgUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	const q = `
		SELECT id, email, first_name, last_name, profile_image_url, created_at, updated_at
		FROM users
		WHERE id = @id`

	u, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return u, nil
}

func (r *pgUserRepo) Upsert(ctx context.Context, u domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (id, email, first_name, last_name, profile_image_url)
		VALUES (@id, @email, @first_name, @last_name, @profile_image_url)
		ON CONFLICT (id) DO UPDATE
		SET email             = EXCLUDED.email,
		    first_name        = EXCLUDED.first_name,
		    last_name         = EXCLUDED.last_name,
		    profile_image_url = EXCLUDED.profile_image_url,
		    updated_at        = now()
		RETURNING id, email, first_name, last_name, profile_image_url, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":                u.ID,
		"email":             nullText(u.Email),
		"first_name":        nullText(u.FirstName),
		"last_name":         nullText(u.LastName),
		"profile_image_url": nullText(u.ProfileImageURL),
	}

	got, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Upsert: %w", err)
	}
	return got, nil
}

// nullText stores empty strings as NULL; the email column is unique and
// several users may have no email.
func nullText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func scanUser(s scanner) (domain.User, error) {
	var (
		u                          domain.User
		email, first, last, avatar pgtype.Text
	)

	err := s.Scan(&u.ID, &email, &first, &last, &avatar, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	u.Email = email.String
	u.FirstName = first.String
	u.LastName = last.String
	u.ProfileImageURL = avatar.String
	return u, nil
}
