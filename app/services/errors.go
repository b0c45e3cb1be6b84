package services

import "errors"

var (
	// ErrValidation is returned when a required field is empty or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden is returned when the requester may not perform the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrDuplicateUser is returned when a registration name is already taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
