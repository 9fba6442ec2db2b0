package domain

import "errors"

var (
	// ErrNotFound is returned when a record the operation depends on does
	// not exist in the store.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateHandle is returned when registration reuses a login
	// handle that already exists.
	ErrDuplicateHandle = errors.New("username already exists")

	// ErrInvalidCredential covers both an unknown handle and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredential = errors.New("invalid credentials")
)
