// Package apiclient is a thin typed client for the backend REST API.
//
// Every endpoint answers with the same envelope shape
// ({status, message, data, errors, code, timestamp}); the client decodes
// the envelope and leaves interpretation of data to callers. Bearer
// credentials are injected per request from a tokenstore.Store through an
// oauth2.TokenSource adapter, so requests made while no credential is
// persisted simply go out unauthenticated.
//
// Transport failures and undecodable responses are returned as errors;
// a well-formed envelope with status "error" is returned as a value and
// surfaced through Envelope.Err.
package apiclient
