package auth

import "context"

type ctxKey struct{}

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserID returns the authenticated user id stored in ctx.
// ok is false for unauthenticated requests.
func UserID(ctx context.Context) (userID string, ok bool) {
	userID, ok = ctx.Value(ctxKey{}).(string)
	return userID, ok && userID != ""
}

// SessionCookieName is the cookie that carries the opaque session id.
const SessionCookieName = "sid"
