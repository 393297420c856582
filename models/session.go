package models

import "time"

// StoredSession is the client-side copy of a login, persisted between runs.
type StoredSession struct {
	Token   string
	Profile Profile
	SavedAt time.Time
}
