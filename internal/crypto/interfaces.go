package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes and verifies professional passwords.
// It knows nothing about storage or the network.
type PasswordHasher interface {
	// Hash returns an encoded hash of password suitable for storage.
	Hash(password string) (string, error)

	// Compare checks password against a hash produced by Hash.
	// It returns ErrPasswordMismatch when they do not match.
	Compare(hashedPassword, password string) error
}
