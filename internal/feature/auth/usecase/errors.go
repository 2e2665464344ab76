// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrMissingField is returned when a required signup or login field is absent.
	// It is wrapped with the name of the offending field.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidEmail is returned when the submitted email is not a valid address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWeakPassword is returned when the submitted password fails the strength policy.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned on any login failure, whether the email is
	// unknown or the password is wrong. The two causes are deliberately not
	// distinguished to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
