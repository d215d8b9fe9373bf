package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/filter"
	"github.com/pkordes/kidmap/backend/internal/service"
)

func placesFixture() []domain.Place {
	return []domain.Place{
		{ID: "1", Category: domain.CategoryPlayground, Name: "Liberty Park Playground"},
		{ID: "2", Category: domain.CategoryPark, Name: "Hamilton Park", Address: "Jersey City"},
		{ID: "3", Category: domain.CategoryMuseum, Name: "Hoboken Historical Museum"},
	}
}

func countingFetcher(calls *atomic.Int32, places []domain.Place, err error) *mockFetcher {
	return &mockFetcher{
		fetch: func(context.Context) ([]domain.Place, error) {
			calls.Add(1)
			return places, err
		},
	}
}

func TestPlaceService_Browse(t *testing.T) {
	var calls atomic.Int32
	svc := service.NewPlaceService(countingFetcher(&calls, placesFixture(), nil), time.Hour)

	res, err := svc.Browse(context.Background(), filter.NewState().Toggle(domain.CategoryMuseum), "park")

	require.NoError(t, err)
	assert.Len(t, res.Visible, 2)
	assert.Equal(t, 1, res.Counts[domain.CategoryMuseum])
	require.NotNil(t, res.Search)
	assert.Len(t, res.Search.Matches, 2)
}

func TestPlaceService_CachesWithinTTL(t *testing.T) {
	var calls atomic.Int32
	svc := service.NewPlaceService(countingFetcher(&calls, placesFixture(), nil), time.Hour)
	ctx := context.Background()

	_, err := svc.Places(ctx)
	require.NoError(t, err)
	_, err = svc.Places(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
}

func TestPlaceService_ZeroTTLAlwaysFetches(t *testing.T) {
	var calls atomic.Int32
	svc := service.NewPlaceService(countingFetcher(&calls, placesFixture(), nil), 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Places(ctx)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), calls.Load())
}

func TestPlaceService_NetworkErrorNotCached(t *testing.T) {
	var calls atomic.Int32
	svc := service.NewPlaceService(countingFetcher(&calls, nil, domain.ErrNetwork), time.Hour)
	ctx := context.Background()

	_, err := svc.Places(ctx)
	assert.ErrorIs(t, err, domain.ErrNetwork)
	_, err = svc.Browse(ctx, filter.NewState(), "")
	assert.ErrorIs(t, err, domain.ErrNetwork)

	assert.Equal(t, int32(2), calls.Load())
}

func TestPlaceService_ConcurrentMissesShareOneFetch(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	f := &mockFetcher{
		fetch: func(context.Context) ([]domain.Place, error) {
			calls.Add(1)
			once.Do(func() { close(started) })
			<-release
			return placesFixture(), nil
		},
	}
	svc := service.NewPlaceService(f, time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.Places(context.Background())
			assert.NoError(t, err)
			assert.Len(t, got, 3)
		}()
	}
	<-started
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestPlaceService_CallerCancellation(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	f := &mockFetcher{
		fetch: func(context.Context) ([]domain.Place, error) {
			<-release
			return placesFixture(), nil
		},
	}
	svc := service.NewPlaceService(f, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Places(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPlaceService_Markers_OnlyVisible(t *testing.T) {
	var calls atomic.Int32
	svc := service.NewPlaceService(countingFetcher(&calls, placesFixture(), nil), time.Hour)

	markers, err := svc.Markers(context.Background(), filter.StateFromEnabled([]domain.Category{domain.CategoryPark}))

	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, "2", markers[0].PlaceID)
}

func TestPlaceService_Find(t *testing.T) {
	var calls atomic.Int32
	svc := service.NewPlaceService(countingFetcher(&calls, placesFixture(), nil), time.Hour)
	ctx := context.Background()

	p, err := svc.Find(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Hoboken Historical Museum", p.Name)

	_, err = svc.Find(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceService_StaticViews(t *testing.T) {
	svc := service.NewPlaceService(&mockFetcher{}, 0)

	assert.Len(t, svc.Categories(), 6)
	assert.Equal(t, domain.RegionBounds, svc.MapConfig().Bounds)
}
