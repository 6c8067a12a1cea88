// Package login provides the HTML login page for the admin console.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidFormData is returned when the submitted login form cannot be parsed
	// or fails validation.
	ErrInvalidFormData = errors.New("invalid form data")

	// ErrInvalidCredentials is returned when the provided email and/or password
	// are not valid.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDisabled is returned when the user account exists but is not active.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrInternalServerError is returned for unexpected failures during the login
	// process.
	ErrInternalServerError = errors.New("internal server error")
)
