package session

import "github.com/dmitrymomot/sessionkit/pkg/identity"

// Status is the authentication status of the session.
type Status int

const (
	// StatusUnknown means the initial resolution has not completed yet.
	StatusUnknown Status = iota
	// StatusAnonymous means no valid credential is held.
	StatusAnonymous
	// StatusAuthenticated means a valid credential resolved to an identity.
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session. Identity is only meaningful when
// Status is StatusAuthenticated.
type State struct {
	Status   Status
	Identity identity.Identity
}

// IsAuthenticated reports whether the snapshot carries a valid identity.
func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}
