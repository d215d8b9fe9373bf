package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing place id, unknown category, latitude out of range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNetwork is returned by the place fetcher when the external query
// service is unreachable or answers with a non-success status.
// There is no retry; handlers map this to HTTP 502 and the user retries.
var ErrNetwork = errors.New("network error")

// ErrUnauthenticated is returned when a session or identity token is missing,
// expired, or invalid. Handlers and middleware map this to HTTP 401.
var ErrUnauthenticated = errors.New("unauthenticated")
