package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrUsernameAlreadyExists is returned when the users.username UNIQUE
	// constraint rejects an insert or update.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProtocolAlreadyExists is returned when the seven-field unique_protocol
	// constraint rejects an insert.
	ErrProtocolAlreadyExists = errors.New("protocol already exists")

	// ErrProtocolNotFound is returned when no protocol matches the id.
	ErrProtocolNotFound = errors.New("protocol not found")

	// ErrCreatorNotFound is returned when a protocol references a user that
	// was deleted after the caller's token was issued.
	ErrCreatorNotFound = errors.New("protocol creator does not exist")

	// ErrLocalSessionNotFound is returned by the client session store when
	// nobody is logged in.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors, wrapped together with the driver
// error.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrScanningRow = errors.New("failed to scan row")

	ErrScanningRows = errors.New("failed to scan rows")
)
