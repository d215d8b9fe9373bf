package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pkordes/kidmap/backend/internal/auth"
	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/handler/gen"
)

// Login handles POST /api/login.
// A valid ID token opens a session and sets the session cookie.
func (s *Server) Login(ctx context.Context, req gen.LoginRequestObject) (gen.LoginResponseObject, error) {
	user, sess, err := s.auth.Login(ctx, req.Body.IdToken)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return gen.Login401JSONResponse{UnauthorizedJSONResponse: gen.UnauthorizedJSONResponse(unauthorizedBody())}, nil
		}
		return nil, err
	}

	return gen.Login200JSONResponse{
		Body:    userToResponse(user),
		Headers: gen.Login200ResponseHeaders{SetCookie: s.sessionCookie(sess).String()},
	}, nil
}

// Logout handles POST /api/logout.
// It always succeeds and always clears the cookie, even without a session.
func (s *Server) Logout(ctx context.Context, req gen.LogoutRequestObject) (gen.LogoutResponseObject, error) {
	if req.Params.Sid != nil {
		if err := s.auth.Logout(ctx, *req.Params.Sid); err != nil {
			return nil, err
		}
	}
	return gen.Logout204Response{
		Headers: gen.Logout204ResponseHeaders{SetCookie: s.expiredCookie().String()},
	}, nil
}

// GetAuthUser handles GET /api/auth/user.
func (s *Server) GetAuthUser(ctx context.Context, _ gen.GetAuthUserRequestObject) (gen.GetAuthUserResponseObject, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return gen.GetAuthUser401JSONResponse{UnauthorizedJSONResponse: gen.UnauthorizedJSONResponse(unauthorizedBody())}, nil
	}

	user, err := s.auth.CurrentUser(ctx, userID)
	if err != nil {
		// A session can outlive its user row only if the row was removed by hand.
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetAuthUser401JSONResponse{UnauthorizedJSONResponse: gen.UnauthorizedJSONResponse(unauthorizedBody())}, nil
		}
		return nil, err
	}
	return gen.GetAuthUser200JSONResponse(userToResponse(user)), nil
}

func (s *Server) sessionCookie(sess domain.Session) *http.Cookie {
	return &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.Expire.UTC(),
		MaxAge:   int(time.Until(sess.Expire).Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// userToResponse maps a domain.User to the generated response type.
// Empty profile fields are omitted.
func userToResponse(u domain.User) gen.User {
	return gen.User{
		Id:              u.ID,
		Email:           optString(u.Email),
		FirstName:       optString(u.FirstName),
		LastName:        optString(u.LastName),
		ProfileImageUrl: optString(u.ProfileImageURL),
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// optString returns nil for "", otherwise a pointer to s.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// derefString returns "" for nil.
func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
