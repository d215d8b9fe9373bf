// Package handler implements the HTTP handlers for the kid-friendly places API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, favorite.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config ../../spec/oapi-codegen.yaml ../../spec/openapi.yaml

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/filter"
	"github.com/pkordes/kidmap/backend/internal/handler/gen"
	"github.com/pkordes/kidmap/backend/internal/mapview"
)

// PlaceServicer defines the place operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the network.
type PlaceServicer interface {
	Browse(ctx context.Context, state filter.State, query string) (filter.Result, error)
	Markers(ctx context.Context, state filter.State) ([]mapview.Marker, error)
	Find(ctx context.Context, placeID string) (domain.Place, error)
	Categories() []domain.CategoryInfo
	MapConfig() mapview.View
}

// FavoriteServicer defines the favorites operations the handlers depend on.
type FavoriteServicer interface {
	List(ctx context.Context, userID string) ([]domain.Favorite, error)
	Add(ctx context.Context, userID string, place domain.PlaceSnapshot) (domain.Favorite, bool, error)
	Remove(ctx context.Context, userID, placeID string) error
	IsFavorite(ctx context.Context, userID, placeID string) (bool, error)
	ToggleVisited(ctx context.Context, userID, placeID string) (domain.Favorite, error)
	Export(ctx context.Context, userID string) ([]domain.ExportRow, error)
}

// AuthServicer defines the sign-in operations the handlers depend on.
type AuthServicer interface {
	Login(ctx context.Context, idToken string) (domain.User, domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, userID string) (domain.User, error)
}

// CommandDispatcher runs map popup actions. *mapview.Dispatcher satisfies it.
type CommandDispatcher interface {
	Dispatch(ctx context.Context, req mapview.Request) (mapview.Result, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	places       PlaceServicer
	favorites    FavoriteServicer
	auth         AuthServicer
	commands     CommandDispatcher
	logger       *slog.Logger
	secureCookie bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for unexpected errors. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSecureCookie controls the Secure attribute of the session cookie.
// Defaults to true; turn it off only for plain-HTTP local development.
func WithSecureCookie(secure bool) Option {
	return func(s *Server) { s.secureCookie = secure }
}

// NewServer constructs the Server with all its dependencies.
func NewServer(places PlaceServicer, favorites FavoriteServicer, auth AuthServicer, commands CommandDispatcher, opts ...Option) *Server {
	s := &Server{
		places:       places,
		favorites:    favorites,
		auth:         auth,
		commands:     commands,
		logger:       slog.Default(),
		secureCookie: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Handler adapts the Server to the generated chi router. Every error the
// router or the strict adapter produces is rendered as a JSON ErrorResponse.
// middlewares run around each operation, after the operation's security
// requirements have been recorded in the request context.
func (s *Server) Handler(middlewares ...gen.MiddlewareFunc) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		Middlewares:      middlewares,
		ErrorHandlerFunc: s.requestError,
	})
}

// requestError handles malformed parameters and bodies rejected before a handler runs.
// A body cut off by the size limit is reported as 413.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, errorBody("payload_too_large", "Request body too large"))
		return
	}
	writeError(w, http.StatusBadRequest, errorBody("bad_request", err.Error()))
}

// responseError handles errors returned by handlers. Anything not mapped to a
// typed response is logged and reported as a generic 500.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrUnauthenticated) {
		writeError(w, http.StatusUnauthorized, unauthorizedBody())
		return
	}
	s.logger.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, errorBody("internal_error", "Internal server error"))
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
