package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor applied when the configured cost is
// zero or out of bcrypt's supported range.
const DefaultBcryptCost = 10

// HashPassword derives a salted bcrypt hash from the plaintext password
// using the given cost. The salt is generated by bcrypt itself, so two
// hashes of the same password never compare equal as raw strings.
//
// An empty password is rejected: hashing it would let registration and
// login flows silently accept blank credentials.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("empty password provided for hashing")
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// Comparison is delegated to bcrypt.CompareHashAndPassword, which is
// resistant to timing attacks. A malformed hash yields false, not an
// error; callers treat any mismatch uniformly.
func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
