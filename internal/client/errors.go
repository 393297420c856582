package client

import "errors"

var (
	ErrNoCommand         = errors.New("no command given")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrMissingSubcommand = errors.New("missing subcommand")
	ErrMissingID         = errors.New("missing id")
	ErrInvalidID         = errors.New("id must be a positive integer")
	ErrNothingToUpdate   = errors.New("nothing to update")

	ErrNotLoggedIn    = errors.New("not logged in, run login first")
	ErrAdminRequired  = errors.New("admin role required")
	ErrSessionExpired = errors.New("session expired, please log in again")
)
