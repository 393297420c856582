package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrForbidden is returned when a non-admin deletes someone else's
	// protocol.
	ErrForbidden = errors.New("no permission to delete this protocol")

	ErrSelfDeleteForbidden = errors.New("cannot delete your own account")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoBootstrapPassword is returned by EnsureAdmin when the admin is
	// missing and no password may be used to seed it.
	ErrNoBootstrapPassword = errors.New("bootstrap admin password is not set")
)
