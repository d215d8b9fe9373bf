package repo_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/repo"
)

func newFavoriteRepo(t *testing.T, users ...string) repo.FavoriteRepo {
	t.Helper()
	tx := newTestTx(t)
	for _, u := range users {
		seedUser(t, tx, u)
	}
	return repo.NewFavoriteRepo(tx)
}

func TestFavoriteRepo_Add(t *testing.T) {
	r := newFavoriteRepo(t, "user-a")
	ctx := context.Background()

	input := snapshotFixture("1001")
	got, created, err := r.Add(ctx, "user-a", input)

	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, [16]byte{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, "user-a", got.UserID)
	assert.Equal(t, input, got.Place)
	assert.False(t, got.Visited)
	assert.Nil(t, got.VisitedAt)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestFavoriteRepo_Add_EmptyAddressRoundTrips(t *testing.T) {
	r := newFavoriteRepo(t, "user-a")

	input := snapshotFixture("1002")
	input.Address = ""
	got, _, err := r.Add(context.Background(), "user-a", input)

	require.NoError(t, err)
	assert.Equal(t, "", got.Place.Address)
}

func TestFavoriteRepo_Add_DuplicateReturnsExisting(t *testing.T) {
	r := newFavoriteRepo(t, "user-a")
	ctx := context.Background()

	first, created, err := r.Add(ctx, "user-a", snapshotFixture("1001"))
	require.NoError(t, err)
	require.True(t, created)

	renamed := snapshotFixture("1001")
	renamed.Name = "Renamed"
	second, created, err := r.Add(ctx, "user-a", renamed)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Liberty Science Center", second.Place.Name, "snapshot is not overwritten")

	all, err := r.ListByUser(ctx, "user-a")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFavoriteRepo_ListByUser_ScopedAndOrdered(t *testing.T) {
	r := newFavoriteRepo(t, "user-a", "user-b")
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		_, _, err := r.Add(ctx, "user-a", snapshotFixture(id))
		require.NoError(t, err)
	}
	_, _, err := r.Add(ctx, "user-b", snapshotFixture("9"))
	require.NoError(t, err)

	got, err := r.ListByUser(ctx, "user-a")

	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, f := range got {
		assert.Equal(t, "user-a", f.UserID)
	}
}

func TestFavoriteRepo_ListByUser_EmptyIsNotNil(t *testing.T) {
	r := newFavoriteRepo(t, "user-a")

	got, err := r.ListByUser(context.Background(), "user-a")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFavoriteRepo_RemoveAndExists(t *testing.T) {
	r := newFavoriteRepo(t, "user-a", "user-b")
	ctx := context.Background()

	_, _, err := r.Add(ctx, "user-a", snapshotFixture("1001"))
	require.NoError(t, err)

	exists, err := r.Exists(ctx, "user-a", "1001")
	require.NoError(t, err)
	assert.True(t, exists)

	// Another user's remove does not touch user-a's row.
	require.NoError(t, r.Remove(ctx, "user-b", "1001"))
	exists, err = r.Exists(ctx, "user-a", "1001")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, r.Remove(ctx, "user-a", "1001"))
	exists, err = r.Exists(ctx, "user-a", "1001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFavoriteRepo_Remove_MissingIsNoError(t *testing.T) {
	r := newFavoriteRepo(t, "user-a")

	err := r.Remove(context.Background(), "user-a", "does-not-exist")

	assert.NoError(t, err)
}

func TestFavoriteRepo_ToggleVisited(t *testing.T) {
	r := newFavoriteRepo(t, "user-a")
	ctx := context.Background()

	_, _, err := r.Add(ctx, "user-a", snapshotFixture("1001"))
	require.NoError(t, err)

	on, err := r.ToggleVisited(ctx, "user-a", "1001")
	require.NoError(t, err)
	assert.True(t, on.Visited)
	require.NotNil(t, on.VisitedAt)

	off, err := r.ToggleVisited(ctx, "user-a", "1001")
	require.NoError(t, err)
	assert.False(t, off.Visited)
	assert.Nil(t, off.VisitedAt)
	assert.Equal(t, on.ID, off.ID)
}

func TestFavoriteRepo_ToggleVisited_NotFound(t *testing.T) {
	r := newFavoriteRepo(t, "user-a")

	_, err := r.ToggleVisited(context.Background(), "user-a", "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFavoriteRepo_GetByPlace_NotFound(t *testing.T) {
	r := newFavoriteRepo(t, "user-a")

	_, err := r.GetByPlace(context.Background(), "user-a", "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestFavoriteRepo_ToggleVisited_Concurrent checks that two flips issued
// through the pool in parallel always land on the original state.
func TestFavoriteRepo_ToggleVisited_Concurrent(t *testing.T) {
	pool := newPoolWithCleanup(t, "user-concurrent")
	r := repo.NewFavoriteRepo(pool)
	ctx := context.Background()

	_, _, err := r.Add(ctx, "user-concurrent", snapshotFixture("2001"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.ToggleVisited(ctx, "user-concurrent", "2001")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := r.GetByPlace(ctx, "user-concurrent", "2001")
	require.NoError(t, err)
	assert.False(t, got.Visited)
	assert.Nil(t, got.VisitedAt)
}
