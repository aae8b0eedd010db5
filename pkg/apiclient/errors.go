package apiclient

import "errors"

var (
	// ErrRequestFailed indicates a transport-level failure: network
	// unreachable, timeout, or an undecodable response body.
	ErrRequestFailed = errors.New("apiclient: request failed")

	// ErrAPIFailure indicates a well-formed envelope with error status.
	ErrAPIFailure = errors.New("apiclient: api returned error status")

	// ErrEmptyBaseURL indicates the client was constructed without a
	// backend base URL.
	ErrEmptyBaseURL = errors.New("apiclient: empty base url")
)
