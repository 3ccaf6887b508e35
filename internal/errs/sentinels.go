// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNoCredentials indicates no persisted session credentials exist.
	ErrNoCredentials = errors.New("no stored credentials")

	// ErrNotAuthenticated indicates an operation that requires a logged-in session.
	ErrNotAuthenticated = errors.New("not authenticated")
)
