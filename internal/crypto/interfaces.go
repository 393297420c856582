package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes account passwords and checks candidates against
// stored hashes. Implementations must be one-way.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash and
	// [ErrPasswordMismatch] when it does not.
	Compare(hash, password string) error
}
