package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/kidmap/backend/internal/auth"
	"github.com/pkordes/kidmap/backend/internal/domain"
	"github.com/pkordes/kidmap/backend/internal/repo"
)

// TokenVerifier validates an identity-provider ID token.
// *auth.Verifier satisfies it.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// AuthService turns verified provider identities into server-side sessions.
type AuthService struct {
	verifier TokenVerifier
	users    repo.UserRepo
	sessions repo.SessionRepo
	ttl      time.Duration
	now      func() time.Time
	newID    func() string
}

// NewAuthService constructs an AuthService whose sessions last ttl.
func NewAuthService(v TokenVerifier, users repo.UserRepo, sessions repo.SessionRepo, ttl time.Duration) *AuthService {
	return &AuthService{
		verifier: v,
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// SessionTTL is how long a new session stays valid.
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

// Login verifies idToken, refreshes the user's stored profile from its
// claims, and opens a new session.
func (s *AuthService) Login(ctx context.Context, idToken string) (domain.User, domain.Session, error) {
	claims, err := s.verifier.Verify(idToken)
	if err != nil {
		return domain.User{}, domain.Session{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}

	user, err := s.users.Upsert(ctx, claims.User())
	if err != nil {
		return domain.User{}, domain.Session{}, fmt.Errorf("service.AuthService.Login: upsert user: %w", err)
	}

	sess := domain.Session{
		ID:     s.newID(),
		UserID: user.ID,
		Expire: s.now().Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return domain.User{}, domain.Session{}, fmt.Errorf("service.AuthService.Login: create session: %w", err)
	}
	return user, sess, nil
}

// Logout ends the session. Unknown sessions are ignored.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("service.AuthService.Logout: %w", err)
	}
	return nil
}

// Authenticate resolves a session id to its user id.
// Missing, unknown, and expired sessions all return a wrapped domain.ErrUnauthenticated.
func (s *AuthService) Authenticate(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("service.AuthService.Authenticate: %w", domain.ErrUnauthenticated)
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", fmt.Errorf("service.AuthService.Authenticate: %w", domain.ErrUnauthenticated)
		}
		return "", fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}
	if sess.Expired(s.now()) {
		return "", fmt.Errorf("service.AuthService.Authenticate: %w", domain.ErrUnauthenticated)
	}
	return sess.UserID, nil
}

// CurrentUser returns the stored profile of an authenticated user.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.CurrentUser: %w", err)
	}
	return u, nil
}
