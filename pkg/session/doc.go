// Package session owns the process-wide authentication state of an API
// client: which credential is persisted and which identity, if any, it
// resolves to.
//
// A Manager is the single authority over session state. It starts in
// StatusUnknown, resolves to Anonymous or Authenticated during
// Initialize, and thereafter transitions only through the public
// operations: Login, Logout, CompleteOAuthLogin, UpdateIdentity and
// Refresh. No transition ever re-enters Unknown.
//
// Failure handling is deliberately total: every transport error, error
// envelope or identity normalization rejection during Initialize, Refresh
// or CompleteOAuthLogin converges to the same outcome — the persisted
// credential is discarded and the session becomes Anonymous. A stale,
// unverifiable credential is never left behind.
//
// Public operations are serialized; each one, including its network step,
// runs to completion before the next begins, so committed transitions are
// ordered by operation completion and a Logout issued while a Refresh is
// in flight always lands last. Other components observe transitions via
// Subscribe and must never mutate state directly.
//
// Usage:
//
//	store := tokenstore.NewMemory()
//	api, _ := apiclient.New(cfg.BaseURL, store)
//	manager := session.New(store, api)
//
//	state := manager.Initialize(ctx)
//	if state.IsAuthenticated() {
//	    fmt.Println("welcome back,", state.Identity.Username)
//	}
package session
