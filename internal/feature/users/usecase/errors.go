// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrPasswordMismatch is returned when a profile update carries a new password whose
	// confirmation does not match.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrInvalidCredentials is returned when credential verification fails.
	// It deliberately covers both "no such email" and "wrong password".
	ErrInvalidCredentials = errors.New("invalid email or password")
)
