package models

import "time"

// User is a persisted account record.
type User struct {
	// ID is the database-generated primary key.
	ID int64 `json:"id"`

	// Username is unique across all accounts.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the account password. It never
	// leaves the server.
	PasswordHash string `json:"-"`

	// Email is an optional contact address.
	Email string `json:"email"`

	Role Role `json:"role"`

	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the public projection of u.
func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// Profile is the part of a [User] that is safe to hand to clients.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the profile belongs to an administrator.
func (p Profile) IsAdmin() bool {
	return p.Role.IsAdmin()
}

// NewUser is the body of an account creation request.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// UserUpdate is a partial account update. Nil fields are left unchanged.
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *Role   `json:"role,omitempty"`

	// Password is the new plain-text password. The service replaces it with
	// PasswordHash before the update reaches storage.
	Password *string `json:"password,omitempty"`

	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update changes nothing. A password counts
// both before and after hashing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Role == nil && u.Password == nil && u.PasswordHash == nil
}
