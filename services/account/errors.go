package account

import "errors"

var (
	// ErrAlreadyExists signals a duplicate first sign-in for the same identity.
	ErrAlreadyExists = errors.New("account already exists")
	// ErrNotFound signals that no account matches the caller's identity.
	ErrNotFound = errors.New("account not found")
)
