// Package tokenstore persists a single opaque bearer credential in
// client-durable storage.
//
// The package is storage-agnostic: any backend that satisfies the Store
// interface can be plugged in. Three implementations ship out of the box:
//
//   - Memory: mutex-guarded slot for tests and ephemeral runs.
//   - File: one token in a file under the user's config directory, the
//     closest Go analogue of a browser's localStorage slot.
//   - SQLite: a single-row table for clients that already carry a local
//     database.
//
// A Store performs no validation, no network calls and no expiry logic;
// it is purely mechanical persistence.
package tokenstore
