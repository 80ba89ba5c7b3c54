// Package services holds the admin console's application services:
// session management (login, logout, restore, tenant selection), tenant
// loading with a static fallback, and the survey generation/publication
// calls.
//
// Services take the session explicitly and keep no UI state; the workflow
// controller owns the session instance and the view state.
package services
