// Package models defines the data exchanged between the admin console and
// the survey backend, and the session persisted between runs.
package models
