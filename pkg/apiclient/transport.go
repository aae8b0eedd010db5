package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/sessionkit/pkg/tokenstore"
)

// Ensure storeSource implements oauth2.TokenSource.
var _ oauth2.TokenSource = (*storeSource)(nil)

// TokenSource adapts a tokenstore.Store to oauth2.TokenSource. An empty
// slot yields tokenstore.ErrNotFound, which the client transport treats
// as "send the request unauthenticated".
func TokenSource(store tokenstore.Store) oauth2.TokenSource {
	return &storeSource{store: store}
}

type storeSource struct {
	store tokenstore.Store
}

func (s *storeSource) Token() (*oauth2.Token, error) {
	token, err := s.store.Get(context.Background())
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer"}, nil
}

// transport decorates the base round tripper with bearer injection and a
// per-request id header.
type transport struct {
	base   http.RoundTripper
	source oauth2.TokenSource
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Request-ID", uuid.NewString())

	token, err := t.source.Token()
	switch {
	case err == nil:
		token.SetAuthHeader(clone)
	case errors.Is(err, tokenstore.ErrNotFound):
		// Anonymous request: login, register, password recovery.
	default:
		return nil, err
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
