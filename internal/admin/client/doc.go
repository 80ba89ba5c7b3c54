// Package client talks to the PopCue survey backend over its REST API.
//
// # Overview
//
// Client is the transport-agnostic contract used by the services layer:
// Login, ListTenants, ListSurveys, GenerateSurvey, PublishSurvey and
// UnpublishSurvey. HTTPClient implements it with net/http and JSON bodies.
// Authenticated calls take the bearer token explicitly; the client keeps no
// session state of its own.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Any non-2xx response becomes an
// *APIError carrying the status code and the backend's optional "detail"
// message; 401/403 responses also match ErrUnauthorized and 502/503/504
// match ErrUnavailable under errors.Is.
//
// Every request carries an X-Request-ID header so a failing call can be
// found in backend logs.
package client
