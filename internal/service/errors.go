package service

import "errors"

var (
	// ErrValidation marks a missing or empty required field.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidID marks an identifier that is not a well-formed ObjectID.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrNotAuthorized is returned when the author is not an ADMIN member of
	// the organization being mutated.
	ErrNotAuthorized = errors.New("author is not an admin of this organization")
	// ErrCannotRemoveCreator protects the organization's creator from removal.
	ErrCannotRemoveCreator = errors.New("the organization creator cannot be removed")
)
