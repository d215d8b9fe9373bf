package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/kidmap/backend/internal/auth"
	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/handler/gen"
)

func userFixture() domain.User {
	return domain.User{
		ID:        testUserID,
		Email:     "parent@example.com",
		FirstName: "Sam",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

// ---- POST /api/login -------------------------------------------------------

func TestLogin_200SetsSessionCookie(t *testing.T) {
	expire := time.Now().Add(24 * time.Hour)
	var gotToken string
	svc := &mockAuthServicer{
		login: func(_ context.Context, idToken string) (domain.User, domain.Session, error) {
			gotToken = idToken
			return userFixture(), domain.Session{ID: "sess-1", UserID: testUserID, Expire: expire}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(t, map[string]any{"idToken": "tok"}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(services{auth: svc}, "").ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", gotToken)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, auth.SessionCookieName, c.Name)
	assert.Equal(t, "sess-1", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Positive(t, c.MaxAge)

	var resp gen.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, testUserID, resp.Id)
	require.NotNil(t, resp.Email)
	assert.Equal(t, "parent@example.com", *resp.Email)
	assert.Nil(t, resp.LastName)
}

func TestLogin_401BadToken(t *testing.T) {
	svc := &mockAuthServicer{
		login: func(context.Context, string) (domain.User, domain.Session, error) {
			return domain.User{}, domain.Session{}, fmt.Errorf("auth.Verifier.Verify: %w: token is expired", domain.ErrUnauthenticated)
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/login", jsonBody(t, map[string]any{"idToken": "old"}))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHTTPHandler(services{auth: svc}, "").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

// ---- POST /api/logout ------------------------------------------------------

func TestLogout_204ClearsCookie(t *testing.T) {
	var gotSession string
	svc := &mockAuthServicer{
		logout: func(_ context.Context, sessionID string) error {
			gotSession = sessionID
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "sess-1"})
	rec := httptest.NewRecorder()
	newHTTPHandler(services{auth: svc}, "").ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "sess-1", gotSession)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogout_204WithoutCookie(t *testing.T) {
	svc := &mockAuthServicer{
		logout: func(context.Context, string) error {
			t.Fatal("logout must not be called without a session cookie")
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(services{auth: svc}, "").ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// ---- GET /api/auth/user ----------------------------------------------------

func TestGetAuthUser_200(t *testing.T) {
	svc := &mockAuthServicer{
		currentUser: func(_ context.Context, userID string) (domain.User, error) {
			require.Equal(t, testUserID, userID)
			return userFixture(), nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(services{auth: svc}, testUserID).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, testUserID, resp.Id)
	require.NotNil(t, resp.FirstName)
	assert.Equal(t, "Sam", *resp.FirstName)
}

func TestGetAuthUser_401(t *testing.T) {
	cases := []struct {
		name   string
		userID string
		err    error
	}{
		{"no session", "", nil},
		{"user row gone", testUserID, fmt.Errorf("repo: %w", domain.ErrNotFound)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockAuthServicer{
				currentUser: func(context.Context, string) (domain.User, error) {
					return domain.User{}, tc.err
				},
			}

			req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
			rec := httptest.NewRecorder()
			newHTTPHandler(services{auth: svc}, tc.userID).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetAuthUser_500OnStoreError(t *testing.T) {
	svc := &mockAuthServicer{
		currentUser: func(context.Context, string) (domain.User, error) {
			return domain.User{}, errors.New("db down")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(services{auth: svc}, testUserID).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
