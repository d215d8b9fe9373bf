package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/repo"
	"github.com/pkordes/kidmap/backend/testutil"
)

// newTestTx opens a transaction against the test database. The transaction
// is rolled back when the test finishes, giving free per-test isolation.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// seedUser inserts a user so that favorites and sessions satisfy their foreign keys.
func seedUser(t *testing.T, tx pgx.Tx, id string) domain.User {
	t.Helper()
	u, err := repo.NewUserRepo(tx).Upsert(context.Background(), domain.User{
		ID:        id,
		Email:     id + "@example.com",
		FirstName: "Test",
	})
	require.NoError(t, err, "seed user")
	return u
}

// snapshotFixture returns a place snapshot with sensible defaults.
func snapshotFixture(placeID string) domain.PlaceSnapshot {
	return domain.PlaceSnapshot{
		PlaceID: placeID,
		Name:    "Liberty Science Center",
		Type:    domain.CategoryScience,
		Lat:     40.7081,
		Lon:     -74.0553,
		Address: "222 Jersey City Blvd Jersey City",
	}
}

// newPoolWithCleanup returns a pool for tests that need real concurrency and
// so cannot share one transaction. The seeded user, and everything that
// cascades from it, is deleted when the test finishes.
func newPoolWithCleanup(t *testing.T, userID string) *pgxpool.Pool {
	t.Helper()
	pool := testutil.NewPool(t)
	ctx := context.Background()

	_, err := repo.NewUserRepo(pool).Upsert(ctx, domain.User{ID: userID})
	require.NoError(t, err, "seed user")

	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, userID)
	})
	return pool
}
