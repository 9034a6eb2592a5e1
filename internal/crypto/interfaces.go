package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/MKhiriev/go-car-keeper/models"

// PasswordHasher produces and checks one-way, self-salted password digests.
type PasswordHasher interface {
	// Hash returns a randomized digest of password. Two calls with the same
	// input return different strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash yields
	// false, never an error or a panic.
	Verify(password, hash string) bool
}

// TokenCodec issues and validates signed, stateless session tokens.
type TokenCodec interface {
	// Issue creates a token for subject that expires after the configured TTL.
	Issue(subject string) (models.Token, error)

	// Validate checks the token signature first and its expiry second, and
	// returns the embedded subject. It fails with [ErrTokenInvalid] or
	// [ErrTokenExpired].
	Validate(tokenString string) (string, error)
}
