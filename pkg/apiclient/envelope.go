package apiclient

import (
	"encoding/json"
	"fmt"
)

// Decode parses a full response body into an Envelope, retaining the
// body for Raw.
func Decode(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrRequestFailed, err)
	}
	env.raw = body
	return &env, nil
}

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the uniform response wrapper used by every backend call.
type Envelope struct {
	Status    string              `json:"status"`
	Message   string              `json:"message"`
	Data      json.RawMessage     `json:"data,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
	Code      int                 `json:"code"`
	Timestamp string              `json:"timestamp"`

	raw []byte
}

// OK reports whether the envelope carries a success status.
func (e *Envelope) OK() bool {
	return e != nil && e.Status == StatusSuccess
}

// Err returns nil for success envelopes, or an error wrapping
// ErrAPIFailure that carries the backend message and code.
func (e *Envelope) Err() error {
	if e.OK() {
		return nil
	}
	if e == nil {
		return ErrAPIFailure
	}
	return fmt.Errorf("%w: %s (code %d)", ErrAPIFailure, e.Message, e.Code)
}

// Raw returns the full response body the envelope was decoded from.
// Identity normalization runs over this, not over Data, because backends
// disagree on where the user object is nested.
func (e *Envelope) Raw() []byte {
	if e == nil {
		return nil
	}
	return e.raw
}

// Token extracts the bearer credential from login/register envelopes,
// which carry it at data.token.
func (e *Envelope) Token() (string, bool) {
	if e == nil || len(e.Data) == 0 {
		return "", false
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(e.Data, &payload); err != nil || payload.Token == "" {
		return "", false
	}
	return payload.Token, true
}
