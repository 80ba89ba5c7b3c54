package services

import (
	"errors"
	"strings"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("not logged in")
	ErrMissingSurveyID    = errors.New("no survey id")
	ErrMissingFields      = errors.New("missing required fields")
)

// ValidationError names the form fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingFields
}
