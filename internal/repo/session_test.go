package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/repo"
	"github.com/pkordes/kidmap/backend/testutil"
)

// sessionStoreContract runs the same behaviour checks against every SessionRepo.
func sessionStoreContract(t *testing.T, r repo.SessionRepo, userID string) {
	ctx := context.Background()

	t.Run("create then get", func(t *testing.T) {
		s := domain.Session{ID: uuid.NewString(), UserID: userID, Expire: time.Now().Add(time.Hour)}
		require.NoError(t, r.Create(ctx, s))

		got, err := r.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)
		assert.Equal(t, userID, got.UserID)
		assert.WithinDuration(t, s.Expire, got.Expire, time.Second)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := r.Get(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		s := domain.Session{ID: uuid.NewString(), UserID: userID, Expire: time.Now().Add(time.Hour)}
		require.NoError(t, r.Create(ctx, s))
		require.NoError(t, r.Delete(ctx, s.ID))

		_, err := r.Get(ctx, s.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		assert.NoError(t, r.Delete(ctx, s.ID), "second delete is a no-op")
	})
}

func TestSessionRepo_Postgres(t *testing.T) {
	tx := newTestTx(t)
	seedUser(t, tx, "session-user")

	sessionStoreContract(t, repo.NewSessionRepo(tx), "session-user")
}

func TestSessionRepo_Postgres_ExpiredIsNotFound(t *testing.T) {
	tx := newTestTx(t)
	seedUser(t, tx, "session-user")
	r := repo.NewSessionRepo(tx)
	ctx := context.Background()

	s := domain.Session{ID: uuid.NewString(), UserID: "session-user", Expire: time.Now().Add(-time.Minute)}
	require.NoError(t, r.Create(ctx, s))

	_, err := r.Get(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionRepo_Redis(t *testing.T) {
	rdb := testutil.NewRedis(t)

	sessionStoreContract(t, repo.NewRedisSessionRepo(rdb), "session-user")
}

func TestSessionRepo_Redis_KeyExpiresWithSession(t *testing.T) {
	rdb := testutil.NewRedis(t)
	r := repo.NewRedisSessionRepo(rdb)
	ctx := context.Background()

	s := domain.Session{ID: uuid.NewString(), UserID: "u", Expire: time.Now().Add(time.Minute)}
	require.NoError(t, r.Create(ctx, s))

	ttl, err := rdb.TTL(ctx, "sess:"+s.ID).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestSessionRepo_Redis_RejectsExpired(t *testing.T) {
	rdb := testutil.NewRedis(t)
	r := repo.NewRedisSessionRepo(rdb)

	err := r.Create(context.Background(), domain.Session{ID: uuid.NewString(), UserID: "u", Expire: time.Now().Add(-time.Second)})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionRepo_Postgres_DeleteExpired(t *testing.T) {
	tx := newTestTx(t)
	seedUser(t, tx, "session-user")
	r := repo.NewSessionRepo(tx)
	ctx := context.Background()

	pruner, ok := r.(repo.SessionPruner)
	require.True(t, ok, "postgres store must support pruning")

	live := domain.Session{ID: uuid.NewString(), UserID: "session-user", Expire: time.Now().Add(time.Hour)}
	dead := domain.Session{ID: uuid.NewString(), UserID: "session-user", Expire: time.Now().Add(-time.Hour)}
	require.NoError(t, r.Create(ctx, live))
	require.NoError(t, r.Create(ctx, dead))

	n, err := pruner.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	_, err = r.Get(ctx, live.ID)
	assert.NoError(t, err)

	var remaining int
	require.NoError(t, tx.QueryRow(ctx, `SELECT count(*) FROM sessions WHERE sid = $1`, dead.ID).Scan(&remaining))
	assert.Zero(t, remaining)
}

func TestSessionRepo_Redis_IsNotAPruner(t *testing.T) {
	_, ok := repo.NewRedisSessionRepo(nil).(repo.SessionPruner)
	assert.False(t, ok)
}
