package auth

import "errors"

var (
	// ErrEmailExists is returned when attempting to sign up with an email that already exists.
	ErrEmailExists = errors.New("user with this email already exists")

	// ErrUserAccountDisabled is returned when attempting to authenticate a disabled user account.
	ErrUserAccountDisabled = errors.New("user account is disabled")

	// ErrInvalidCredentials is returned when the provided email and/or password are not valid.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user cannot be found in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a bearer token fails signature or claim validation.
	ErrInvalidToken = errors.New("invalid token")
)
