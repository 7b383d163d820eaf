package adapter

import "errors"

// Transport-level sentinel errors mapped from HTTP status codes by
// mapHTTPError. Callers match them with [errors.Is].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")

	// ErrGrantRejected is returned by [TokenClient] when the token endpoint
	// answers non-2xx. The wrapped message carries the provider's
	// error_description.
	ErrGrantRejected = errors.New("token grant rejected")
)
