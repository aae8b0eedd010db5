package identity

import "errors"

var (
	// ErrInvalidPayload indicates the payload could not be resolved to a
	// valid identity: no candidate user object was found, or the id could
	// not be coerced to an integer.
	ErrInvalidPayload = errors.New("identity: invalid user payload")
)
