package auth

import (
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for new bcrypt hashes.
const BcryptCost = 10

type Algorithm string

const (
	AlgorithmBcrypt   Algorithm = "bcrypt"
	AlgorithmArgon2id Algorithm = "argon2id"
)

// HashPassword creates a salted one-way hash of the password.
func HashPassword(password string, algorithm Algorithm) (string, error) {
	switch algorithm {
	case AlgorithmBcrypt:
		hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
		if err != nil {
			return "", fmt.Errorf("failed to generate bcrypt hash: %w", err)
		}
		return string(hash), nil
	case AlgorithmArgon2id:
		hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
		if err != nil {
			return "", fmt.Errorf("failed to generate argon2id hash: %w", err)
		}
		return hash, nil
	default:
		return "", fmt.Errorf("unknown hash algorithm: %s", algorithm)
	}
}

// VerifyPassword reports whether password matches the stored hash.
//
// Both bcrypt and argon2id hashes are accepted. A malformed hash or
// an unknown scheme is reported as a mismatch.
func VerifyPassword(password, hash string) bool {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		match, err := argon2id.ComparePasswordAndHash(password, hash)
		return err == nil && match
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	default:
		return false
	}
}
