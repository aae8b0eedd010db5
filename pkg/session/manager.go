package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/sessionkit/pkg/apiclient"
	"github.com/dmitrymomot/sessionkit/pkg/identity"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/tokenstore"
)

// API is the backend collaborator the manager needs: fetching the
// identity behind the current credential and best-effort server-side
// invalidation. *apiclient.Client satisfies it.
type API interface {
	CurrentUser(ctx context.Context) (*apiclient.Envelope, error)
	Logout(ctx context.Context) (*apiclient.Envelope, error)
}

// Observer receives a state snapshot after each committed transition.
type Observer func(State)

// Manager is the single source of truth for the current authenticated
// identity. Construct exactly one per process and share it.
type Manager struct {
	api    API
	store  tokenstore.Store
	logger *slog.Logger

	// opMu serializes public operations end to end, network steps
	// included. Commits are therefore ordered by operation completion.
	opMu sync.Mutex

	stateMu sync.RWMutex
	state   State

	subMu   sync.Mutex
	subs    map[int]Observer
	nextSub int
}

// Option configures a Manager during construction.
type Option func(*Manager)

// WithLogger configures the logger for the manager.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// New creates a session manager over the given credential store and API
// collaborator. The manager starts in StatusUnknown; call Initialize at
// boot to resolve it.
func New(store tokenstore.Store, api API, opts ...Option) *Manager {
	m := &Manager{
		api:    api,
		store:  store,
		logger: logger.Discard(),
		state:  State{Status: StatusUnknown},
		subs:   make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns a snapshot of the session state.
func (m *Manager) Current() State {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.state
}

// Identity returns the current identity and true when authenticated.
func (m *Manager) Identity() (identity.Identity, bool) {
	state := m.Current()
	return state.Identity, state.IsAuthenticated()
}

// IsAuthenticated reports whether the session currently holds a valid
// identity.
func (m *Manager) IsAuthenticated() bool {
	return m.Current().IsAuthenticated()
}

// Subscribe registers an observer notified synchronously, in
// subscription order, after every committed transition. The returned
// function removes the subscription.
func (m *Manager) Subscribe(fn Observer) (unsubscribe func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn

	return func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		delete(m.subs, id)
	}
}

// Initialize resolves the persisted credential into a session state at
// boot: Anonymous when no credential is stored, Authenticated when the
// credential yields a normalizable identity, and Anonymous with the
// credential discarded on any failure. It never returns an error; the
// resolved state is returned instead.
func (m *Manager) Initialize(ctx context.Context) State {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	return m.resolve(ctx)
}

// Refresh re-runs the same resolution as Initialize against the
// currently persisted credential. Idempotent; used to re-validate after
// external events such as a plan change.
func (m *Manager) Refresh(ctx context.Context) State {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	return m.resolve(ctx)
}

// Login commits an already-validated credential and identity: the caller
// performed the network round trip. No network I/O happens here.
// Observers are notified synchronously before Login returns.
func (m *Manager) Login(ctx context.Context, credential string, ident identity.Identity) error {
	if credential == "" {
		return ErrEmptyCredential
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.store.Set(ctx, credential); err != nil {
		return fmt.Errorf("session: persist credential: %w", err)
	}
	m.commit(State{Status: StatusAuthenticated, Identity: ident})
	return nil
}

// Logout ends the session. Server-side invalidation is best-effort; the
// local credential is deleted and the session becomes Anonymous no
// matter what the network does.
func (m *Manager) Logout(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if env, err := m.api.Logout(ctx); err != nil {
		m.logger.DebugContext(ctx, "logout invalidation failed",
			logger.Error(err),
			logger.Component("session"),
		)
	} else if err := env.Err(); err != nil {
		m.logger.DebugContext(ctx, "logout invalidation rejected",
			logger.Error(err),
			logger.Component("session"),
		)
	}

	m.clearCredential(ctx)
	m.commit(State{Status: StatusAnonymous})
}

// CompleteOAuthLogin exchanges a callback-delivered credential for a
// validated identity. The credential is persisted speculatively so the
// identity fetch carries it, then either committed together with the
// resolved identity or rolled back on every failure path. Transport and
// normalization failures are not surfaced individually; callers get
// ErrOAuthCompletionFailed and an Anonymous session.
func (m *Manager) CompleteOAuthLogin(ctx context.Context, credential string) error {
	if credential == "" {
		return ErrEmptyCredential
	}

	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.store.Set(ctx, credential); err != nil {
		return fmt.Errorf("session: persist credential: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			m.clearCredential(ctx)
			m.commit(State{Status: StatusAnonymous})
		}
	}()

	ident, ok := m.fetchIdentity(ctx)
	if !ok {
		return ErrOAuthCompletionFailed
	}

	m.commit(State{Status: StatusAuthenticated, Identity: ident})
	committed = true
	return nil
}

// UpdateIdentity replaces the identity inside an authenticated session,
// e.g. after a profile edit. The credential is untouched. Returns
// ErrNotAuthenticated when there is no session to update.
func (m *Manager) UpdateIdentity(ident identity.Identity) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if !m.Current().IsAuthenticated() {
		return ErrNotAuthenticated
	}
	m.commit(State{Status: StatusAuthenticated, Identity: ident})
	return nil
}

// resolve maps the persisted credential to a session state. Callers hold
// opMu.
func (m *Manager) resolve(ctx context.Context) State {
	if _, err := m.store.Get(ctx); err != nil {
		// No credential, nothing to verify; no identity fetch happens.
		state := State{Status: StatusAnonymous}
		m.commit(state)
		return state
	}

	ident, ok := m.fetchIdentity(ctx)
	if !ok {
		m.clearCredential(ctx)
		state := State{Status: StatusAnonymous}
		m.commit(state)
		return state
	}

	state := State{Status: StatusAuthenticated, Identity: ident}
	m.commit(state)
	return state
}

// fetchIdentity performs the current-user round trip and normalization.
// Transport errors, error envelopes and normalization rejections all
// collapse to !ok; the session layer does not distinguish them.
func (m *Manager) fetchIdentity(ctx context.Context) (identity.Identity, bool) {
	env, err := m.api.CurrentUser(ctx)
	if err != nil {
		m.logger.DebugContext(ctx, "identity fetch failed",
			logger.Error(err),
			logger.Component("session"),
		)
		return identity.Identity{}, false
	}
	if !env.OK() {
		m.logger.DebugContext(ctx, "identity fetch rejected",
			logger.Error(env.Err()),
			logger.Component("session"),
		)
		return identity.Identity{}, false
	}

	ident, err := identity.Normalize(env.Raw())
	if err != nil {
		m.logger.DebugContext(ctx, "identity normalization rejected",
			logger.Error(err),
			logger.Component("session"),
		)
		return identity.Identity{}, false
	}
	return ident, true
}

func (m *Manager) clearCredential(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.WarnContext(ctx, "failed to clear credential",
			logger.Error(err),
			logger.Component("session"),
		)
	}
}

// commit stores the new state and notifies observers synchronously with
// the committed snapshot.
func (m *Manager) commit(state State) {
	m.stateMu.Lock()
	m.state = state
	m.stateMu.Unlock()

	m.subMu.Lock()
	observers := make([]Observer, 0, len(m.subs))
	for id := 0; id < m.nextSub; id++ {
		if fn, ok := m.subs[id]; ok {
			observers = append(observers, fn)
		}
	}
	m.subMu.Unlock()

	for _, fn := range observers {
		fn(state)
	}
}
