package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session assertion.
type Claims struct {
	jwt.RegisteredClaims

	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Principal returns the authenticated identity carried by c.
func (c *Claims) Principal() Principal {
	return Principal{
		ID:       c.UserID,
		Username: c.Username,
		Role:     c.Role,
	}
}

// Token is an issued session assertion.
type Token struct {
	*jwt.Token `json:"-"`

	Claims *Claims `json:"-"`

	SignedString string `json:"-"`
}

// Principal is the identity extracted from a validated session assertion and
// attached to a request for the duration of its handling.
type Principal struct {
	ID       int64
	Username string
	Role     Role
}

// IsAdmin reports whether the principal holds the administrator role.
func (p Principal) IsAdmin() bool {
	return p.Role.IsAdmin()
}
