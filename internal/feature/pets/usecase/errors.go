// Package usecase implements the business logic for the pets feature.
package usecase

import "errors"

var (
	// ErrPetNotFound is returned when a pet cannot be found by ID.
	ErrPetNotFound = errors.New("pet not found")

	// ErrOwnerNotFound is returned when creating a pet for a user that does not exist.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrNotOwner is returned when a caller attempts to modify a pet they do not own.
	ErrNotOwner = errors.New("caller is not the owner of this pet")
)
