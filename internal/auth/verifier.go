// Package auth verifies identity-provider ID tokens and carries the
// authenticated user id through request contexts.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pkordes/kidmap/backend/internal/domain"
)

// Claims are the identity claims the provider puts in an ID token.
// The subject is the user's stable id.
type Claims struct {
	jwt.RegisteredClaims
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// User converts the claims into the profile stored on login.
func (c Claims) User() domain.User {
	return domain.User{
		ID:              c.Subject,
		Email:           c.Email,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		ProfileImageURL: c.ProfileImageURL,
	}
}

// Verifier checks HS256-signed ID tokens against a shared secret.
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewVerifier returns a Verifier. When issuer is non-empty, tokens must carry
// a matching iss claim.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer, leeway: 30 * time.Second}
}

// Verify parses token and returns its claims.
// Any signature, expiry, issuer, or subject failure is a wrapped domain.ErrUnauthenticated.
func (v *Verifier) Verify(token string) (Claims, error) {
	if strings.TrimSpace(token) == "" {
		return Claims{}, fmt.Errorf("auth.Verifier.Verify: %w: empty token", domain.ErrUnauthenticated)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	tok, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return Claims{}, fmt.Errorf("auth.Verifier.Verify: %w: %v", domain.ErrUnauthenticated, err)
	}
	if !tok.Valid {
		return Claims{}, fmt.Errorf("auth.Verifier.Verify: %w: invalid token", domain.ErrUnauthenticated)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return Claims{}, fmt.Errorf("auth.Verifier.Verify: %w: missing sub", domain.ErrUnauthenticated)
	}
	return claims, nil
}
