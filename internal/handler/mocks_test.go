package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/kidmap/backend/internal/auth"
	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/filter"
	"github.com/pkordes/kidmap/backend/internal/handler"
	"github.com/pkordes/kidmap/backend/internal/handler/gen"
	"github.com/pkordes/kidmap/backend/internal/mapview"
)

// ---- mocks -----------------------------------------------------------------
// Set only the method fields your test needs.

type mockPlaceServicer struct {
	browse  func(ctx context.Context, state filter.State, query string) (filter.Result, error)
	markers func(ctx context.Context, state filter.State) ([]mapview.Marker, error)
	find    func(ctx context.Context, placeID string) (domain.Place, error)
}

func (m *mockPlaceServicer) Browse(ctx context.Context, state filter.State, query string) (filter.Result, error) {
	return m.browse(ctx, state, query)
}
func (m *mockPlaceServicer) Markers(ctx context.Context, state filter.State) ([]mapview.Marker, error) {
	return m.markers(ctx, state)
}
func (m *mockPlaceServicer) Find(ctx context.Context, placeID string) (domain.Place, error) {
	return m.find(ctx, placeID)
}
func (m *mockPlaceServicer) Categories() []domain.CategoryInfo { return domain.Categories() }
func (m *mockPlaceServicer) MapConfig() mapview.View { return mapview.DefaultView() }

var _ handler.PlaceServicer = (*mockPlaceServicer)(nil)

type mockFavoriteServicer struct {
	list          func(ctx context.Context, userID string) ([]domain.Favorite, error)
	add           func(ctx context.Context, userID string, place domain.PlaceSnapshot) (domain.Favorite, bool, error)
	remove        func(ctx context.Context, userID, placeID string) error
	isFavorite    func(ctx context.Context, userID, placeID string) (bool, error)
	toggleVisited func(ctx context.Context, userID, placeID string) (domain.Favorite, error)
	export        func(ctx context.Context, userID string) ([]domain.ExportRow, error)
}

func (m *mockFavoriteServicer) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	return m.list(ctx, userID)
}
func (m *mockFavoriteServicer) Add(ctx context.Context, userID string, place domain.PlaceSnapshot) (domain.Favorite, bool, error) {
	return m.add(ctx, userID, place)
}
func (m *mockFavoriteServicer) Remove(ctx context.Context, userID, placeID string) error {
	return m.remove(ctx, userID, placeID)
}
func (m *mockFavoriteServicer) IsFavorite(ctx context.Context, userID, placeID string) (bool, error) {
	return m.isFavorite(ctx, userID, placeID)
}
func (m *mockFavoriteServicer) ToggleVisited(ctx context.Context, userID, placeID string) (domain.Favorite, error) {
	return m.toggleVisited(ctx, userID, placeID)
}
func (m *mockFavoriteServicer) Export(ctx context.Context, userID string) ([]domain.ExportRow, error) {
	return m.export(ctx, userID)
}

var _ handler.FavoriteServicer = (*mockFavoriteServicer)(nil)

type mockAuthServicer struct {
	login       func(ctx context.Context, idToken string) (domain.User, domain.Session, error)
	logout      func(ctx context.Context, sessionID string) error
	currentUser func(ctx context.Context, userID string) (domain.User, error)
}

func (m *mockAuthServicer) Login(ctx context.Context, idToken string) (domain.User, domain.Session, error) {
	return m.login(ctx, idToken)
}
func (m *mockAuthServicer) Logout(ctx context.Context, sessionID string) error {
	return m.logout(ctx, sessionID)
}
func (m *mockAuthServicer) CurrentUser(ctx context.Context, userID string) (domain.User, error) {
	return m.currentUser(ctx, userID)
}

var _ handler.AuthServicer = (*mockAuthServicer)(nil)

type mockDispatcher struct {
	dispatch func(ctx context.Context, req mapview.Request) (mapview.Result, error)
}

func (m *mockDispatcher) Dispatch(ctx context.Context, req mapview.Request) (mapview.Result, error) {
	return m.dispatch(ctx, req)
}

var _ handler.CommandDispatcher = (*mockDispatcher)(nil)

// ---- helpers ---------------------------------------------------------------

const testUserID = "user-1"

// services bundles the mocks a test server is built from. Nil fields stay nil.
type services struct {
	places    handler.PlaceServicer
	favorites handler.FavoriteServicer
	auth      handler.AuthServicer
	commands  handler.CommandDispatcher
}

// newHTTPHandler wires a Server through the generated chi router, the way
// main.go does. The request is treated as signed in as userID unless userID is "".
func newHTTPHandler(svcs services, userID string) http.Handler {
	srv := handler.NewServer(svcs.places, svcs.favorites, svcs.auth, svcs.commands, handler.WithSecureCookie(false))
	return srv.Handler(signedInAs(userID))
}

// signedInAs stands in for the session middleware.
func signedInAs(userID string) gen.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID != "" {
				r = r.WithContext(auth.WithUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func favoriteFixture() domain.Favorite {
	return domain.Favorite{
		ID:     uuid.New(),
		UserID: testUserID,
		Place: domain.PlaceSnapshot{
			PlaceID: "123456",
			Name:    "Hamilton Park",
			Type:    domain.CategoryPark,
			Lat:     40.7282,
			Lon:     -74.0445,
		},
		CreatedAt: time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC),
	}
}

func decodeError(t *testing.T, body *bytes.Buffer) gen.ErrorResponse {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}
