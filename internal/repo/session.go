package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/kidmap/backend/internal/domain"
)

// SessionRepo stores login sessions keyed by the opaque cookie value.
type SessionRepo interface {
	// Create stores a new session.
	Create(ctx context.Context, s domain.Session) error

	// Get returns an unexpired session by id.
	// Missing and expired sessions both return domain.ErrNotFound.
	Get(ctx context.Context, id string) (domain.Session, error)

	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id string) error
}

// SessionPruner is implemented by stores that keep expired sessions until
// told to drop them. Stores with native expiry (Redis) do not implement it.
type SessionPruner interface {
	// DeleteExpired removes every expired session and returns how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

// sessionPayload is the JSON document kept alongside each session.
type sessionPayload struct {
	UserID    string    `json:"userId"`
	Expire    time.Time `json:"expire"`
	CreatedAt time.Time `json:"createdAt"`
}

type pgSessionRepo struct {
	db db
}

// NewSessionRepo constructs a Postgres-backed SessionRepo over the sessions table.
func NewSessionRepo(db db) SessionRepo {
	return &pgSessionRepo{db: db}
}

func (r *pgSessionRepo) Create(ctx context.Context, s domain.Session) error {
	const q = `
		INSERT INTO sessions (sid, user_id, sess, expire)
		VALUES (@sid, @user_id, @sess, @expire)`

	sess, err := json.Marshal(sessionPayload{UserID: s.UserID, Expire: s.Expire, CreatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("repo.SessionRepo.Create: encode: %w", err)
	}

	args := pgx.NamedArgs{
		"sid":     s.ID,
		"user_id": s.UserID,
		"sess":    sess,
		"expire":  s.Expire,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.SessionRepo.Create: %w", err)
	}
	return nil
}

func (r *pgSessionRepo) Get(ctx context.Context, id string) (domain.Session, error) {
	const q = `
		SELECT sid, user_id, expire
		FROM sessions
		WHERE sid = @sid AND expire > now()`

	var s domain.Session
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"sid": id}).Scan(&s.ID, &s.UserID, &s.Expire)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Session{}, fmt.Errorf("repo.SessionRepo.Get: %w", domain.ErrNotFound)
		}
		return domain.Session{}, fmt.Errorf("repo.SessionRepo.Get: %w", err)
	}
	return s, nil
}

func (r *pgSessionRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM sessions WHERE sid = @sid`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"sid": id}); err != nil {
		return fmt.Errorf("repo.SessionRepo.Delete: %w", err)
	}
	return nil
}

func (r *pgSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	const q = `DELETE FROM sessions WHERE expire <= now()`

	tag, err := r.db.Exec(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("repo.SessionRepo.DeleteExpired: %w", err)
	}
	return tag.RowsAffected(), nil
}
