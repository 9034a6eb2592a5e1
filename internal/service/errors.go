package service

import "errors"

var (
	// ErrInvalidDataProvided is returned for empty usernames, empty passwords
	// and invalid car ids.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed is returned by Login both for unknown usernames
	// and for wrong passwords, and by Identify for unknown usernames.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
