// Package oauthflow completes a provider-driven OAuth login: the backend
// redirects the user back with a freshly issued bearer credential in the
// query string, and this package exchanges it for a validated session.
//
// A Completer is a one-shot guard around the exchange. It runs exactly
// once per instance no matter how often it is invoked; the guard is keyed
// on the instance, not on the credential value, because the credential is
// single-use and may already be consumed by the time a duplicate
// invocation is detected.
//
// The credential is accepted under the "token" query parameter or its
// legacy "api_token" alias. A missing credential fails immediately with
// no network traffic. An optional bounded retry with a fixed delay
// tolerates backends that are eventually consistent right after token
// issuance; the policy is configuration, not a hidden constant.
//
// Handler adapts the flow to an HTTP endpoint and redirects to the
// configured authenticated or unauthenticated entry point; the credential
// never appears in the response URL.
package oauthflow
