package domain

import "time"

// User is an account owned by the external identity provider.
// ID is the provider's stable subject identifier; the remaining fields are
// refreshed from the provider's claims on every login.
type User struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Session binds an opaque cookie value to a user until Expire.
type Session struct {
	ID     string
	UserID string
	Expire time.Time
}

// Expired reports whether the session is no longer usable at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.Expire)
}
