// Package identity converts heterogeneous "current user" API payloads into
// one canonical Identity record.
//
// Identity providers do not agree on a payload shape: a first-party login,
// a Google profile and a GitHub profile all nest and name user fields
// differently. Normalize accepts whatever JSON shows up, locates the user
// object through an ordered list of candidate paths, and extracts each
// canonical field through a first-match-wins rule chain. Payloads that
// cannot produce a valid Identity are rejected with ErrInvalidPayload;
// Normalize never panics.
package identity
