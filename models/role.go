// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownRole is returned by [ParseRole] for any value outside the closed
// set of roles.
var ErrUnknownRole = errors.New("unknown role")

// Role is the authorization level of a user account.
//
// The set of roles is closed: only [RoleAdmin] and [RoleUser] are valid.
// Values coming from the outside (JSON bodies, token claims, database rows)
// must go through [ParseRole] or [Role.Valid] before they are trusted.
type Role string

const (
	// RoleAdmin may manage user accounts and delete any protocol.
	RoleAdmin Role = "admin"

	// RoleUser may manage the protocols it created.
	RoleUser Role = "user"
)

// ParseRole converts s into a [Role], rejecting unknown values.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}

	return role, nil
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether r grants administrator rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// UnmarshalJSON accepts only known roles. An empty string decodes into the
// zero Role so that optional fields can be left out of request bodies.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		*r = ""
		return nil
	}

	role, err := ParseRole(s)
	if err != nil {
		return err
	}

	*r = role
	return nil
}
