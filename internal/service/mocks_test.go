package service_test

import (
	"context"

	"github.com/pkordes/kidmap/backend/internal/auth"
	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/repo"
	"github.com/pkordes/kidmap/backend/internal/service"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones your test needs.

type mockFavoriteRepo struct {
	listByUser    func(ctx context.Context, userID string) ([]domain.Favorite, error)
	add           func(ctx context.Context, userID string, place domain.PlaceSnapshot) (domain.Favorite, bool, error)
	getByPlace    func(ctx context.Context, userID, placeID string) (domain.Favorite, error)
	remove        func(ctx context.Context, userID, placeID string) error
	exists        func(ctx context.Context, userID, placeID string) (bool, error)
	toggleVisited func(ctx context.Context, userID, placeID string) (domain.Favorite, error)
}

func (m *mockFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]domain.Favorite, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockFavoriteRepo) Add(ctx context.Context, userID string, place domain.PlaceSnapshot) (domain.Favorite, bool, error) {
	return m.add(ctx, userID, place)
}
func (m *mockFavoriteRepo) GetByPlace(ctx context.Context, userID, placeID string) (domain.Favorite, error) {
	return m.getByPlace(ctx, userID, placeID)
}
func (m *mockFavoriteRepo) Remove(ctx context.Context, userID, placeID string) error {
	return m.remove(ctx, userID, placeID)
}
func (m *mockFavoriteRepo) Exists(ctx context.Context, userID, placeID string) (bool, error) {
	return m.exists(ctx, userID, placeID)
}
func (m *mockFavoriteRepo) ToggleVisited(ctx context.Context, userID, placeID string) (domain.Favorite, error) {
	return m.toggleVisited(ctx, userID, placeID)
}

var _ repo.FavoriteRepo = (*mockFavoriteRepo)(nil)

type mockUserRepo struct {
	getByID func(ctx context.Context, id string) (domain.User, error)
	upsert  func(ctx context.Context, u domain.User) (domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) Upsert(ctx context.Context, u domain.User) (domain.User, error) {
	return m.upsert(ctx, u)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

type mockSessionRepo struct {
	create func(ctx context.Context, s domain.Session) error
	get    func(ctx context.Context, id string) (domain.Session, error)
	delete func(ctx context.Context, id string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, s domain.Session) error {
	return m.create(ctx, s)
}
func (m *mockSessionRepo) Get(ctx context.Context, id string) (domain.Session, error) {
	return m.get(ctx, id)
}
func (m *mockSessionRepo) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

var _ repo.SessionRepo = (*mockSessionRepo)(nil)

type mockVerifier struct {
	verify func(token string) (auth.Claims, error)
}

func (m *mockVerifier) Verify(token string) (auth.Claims, error) {
	return m.verify(token)
}

var _ service.TokenVerifier = (*mockVerifier)(nil)

type mockFetcher struct {
	fetch func(ctx context.Context) ([]domain.Place, error)
}

func (m *mockFetcher) Fetch(ctx context.Context) ([]domain.Place, error) {
	return m.fetch(ctx)
}

var _ service.PlaceFetcher = (*mockFetcher)(nil)
