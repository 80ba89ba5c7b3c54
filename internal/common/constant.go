// Package common contains constants and helpers shared by the admin console
// packages.
package common

const (
	// AuthorizationHeader carries the bearer token on authenticated calls.
	AuthorizationHeader = "Authorization"

	// RequestIDHeader tags every outbound request for backend log correlation.
	RequestIDHeader = "X-Request-ID"

	ContentTypeHeader = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// BearerToken formats token for the Authorization header.
func BearerToken(token string) string {
	return "Bearer " + token
}
