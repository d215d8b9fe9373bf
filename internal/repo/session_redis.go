package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pkordes/kidmap/backend/internal/domain"
)

const sessionKeyPrefix = "sess:"

// OpenRedis connects to addr and verifies the connection with a PING.
func OpenRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("repo.OpenRedis: ping: %w", err)
	}
	return rdb, nil
}

// redisSessionRepo keeps each session as a JSON value whose key expires
// together with the session.
type redisSessionRepo struct {
	rdb *redis.Client
	now func() time.Time
}

// NewRedisSessionRepo constructs a SessionRepo backed by Redis.
func NewRedisSessionRepo(rdb *redis.Client) SessionRepo {
	return &redisSessionRepo{rdb: rdb, now: time.Now}
}

func (r *redisSessionRepo) Create(ctx context.Context, s domain.Session) error {
	ttl := s.Expire.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("repo.RedisSessionRepo.Create: %w: session already expired", domain.ErrValidation)
	}

	raw, err := json.Marshal(sessionPayload{UserID: s.UserID, Expire: s.Expire, CreatedAt: r.now().UTC()})
	if err != nil {
		return fmt.Errorf("repo.RedisSessionRepo.Create: encode: %w", err)
	}
	if err := r.rdb.Set(ctx, sessionKeyPrefix+s.ID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("repo.RedisSessionRepo.Create: %w", err)
	}
	return nil
}

func (r *redisSessionRepo) Get(ctx context.Context, id string) (domain.Session, error) {
	raw, err := r.rdb.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, fmt.Errorf("repo.RedisSessionRepo.Get: %w", domain.ErrNotFound)
		}
		return domain.Session{}, fmt.Errorf("repo.RedisSessionRepo.Get: %w", err)
	}

	var p sessionPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Session{}, fmt.Errorf("repo.RedisSessionRepo.Get: decode: %w", err)
	}

	s := domain.Session{ID: id, UserID: p.UserID, Expire: p.Expire}
	// Key expiry has millisecond granularity; the stored deadline is authoritative.
	if s.Expired(r.now()) {
		return domain.Session{}, fmt.Errorf("repo.RedisSessionRepo.Get: %w", domain.ErrNotFound)
	}
	return s, nil
}

func (r *redisSessionRepo) Delete(ctx context.Context, id string) error {
	if err := r.rdb.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("repo.RedisSessionRepo.Delete: %w", err)
	}
	return nil
}
