package session

import "errors"

var (
	// ErrEmptyCredential indicates a login attempt with an empty token.
	ErrEmptyCredential = errors.New("session: empty credential")

	// ErrNotAuthenticated indicates an operation that requires an
	// authenticated session was called without one.
	ErrNotAuthenticated = errors.New("session: not authenticated")

	// ErrOAuthCompletionFailed indicates the callback credential could
	// not be exchanged for a valid identity; it has been discarded.
	ErrOAuthCompletionFailed = errors.New("session: oauth completion failed")
)
