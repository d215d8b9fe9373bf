package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/kidmap/backend/internal/auth"
	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/handler/gen"
)

// Authenticator resolves a session cookie value to a user id.
// *service.AuthService satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, sessionID string) (string, error)
}

// NewSessionAuth returns a per-operation middleware for the generated router.
// Operations that declare the sessionCookie security scheme require a live
// session: the signed-in user id is stored with auth.WithUserID, and requests
// without one get 401. Public operations pass through untouched.
func NewSessionAuth(a Authenticator, log *slog.Logger) gen.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Context().Value(gen.SessionCookieScopes) == nil {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(auth.SessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			userID, err := a.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					unauthorized(w)
					return
				}
				log.ErrorContext(r.Context(), "session lookup failed", "error", err)
				writeJSON(w, http.StatusInternalServerError, gen.ErrorResponse{
					Message: "Internal server error",
					Code:    ptr("internal_error"),
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, gen.ErrorResponse{
		Message: "Unauthorized",
		Code:    ptr("unauthorized"),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ptr(s string) *string { return &s }
