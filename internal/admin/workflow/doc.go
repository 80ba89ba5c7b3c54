// Package workflow coordinates the session, the tenant choice and the survey
// generate/publish cycle for one console instance.
//
// The Controller owns all mutable state. It never renders anything: every
// action returns plain data or an error and reports its outcome through a
// notify.Center, and the caller decides how to display it.
//
// Network-backed actions are serialized by a non-blocking busy guard; an
// action started while another is still in flight fails with ErrBusy.
package workflow
