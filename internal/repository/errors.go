package repository

import "errors"

var (
	// ErrEmailExists is returned when inserting a user whose email is
	// already taken (MySQL duplicate-key error 1062).
	ErrEmailExists = errors.New("email already exists")
	// ErrNotFound is returned by lookups and mutations that matched no
	// row.
	ErrNotFound = errors.New("not found")
	// ErrResetTokenInvalid covers unknown, expired and already-used
	// reset tokens.
	ErrResetTokenInvalid = errors.New("reset token invalid")
)
