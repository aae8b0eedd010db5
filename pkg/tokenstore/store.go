package tokenstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates no credential is currently persisted.
	ErrNotFound = errors.New("tokenstore: token not found")

	// ErrEmptyToken indicates an attempt to persist an empty credential.
	ErrEmptyToken = errors.New("tokenstore: empty token")
)

// Store is a durable slot for exactly one bearer credential.
type Store interface {
	// Get retrieves the persisted credential or ErrNotFound.
	Get(ctx context.Context) (string, error)

	// Set persists the credential, replacing any previous value.
	Set(ctx context.Context, token string) error

	// Clear removes the persisted credential. Clearing an empty slot
	// is not an error.
	Clear(ctx context.Context) error
}
