package service

import "errors"

var (
	// ErrDuplicateUser is returned by registration when the username is
	// already taken.
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidInput is returned when a command is rejected before it
	// reaches the store.
	ErrInvalidInput = errors.New("invalid input")
)
