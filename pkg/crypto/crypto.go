// Package crypto provides password hashing and token generation for the
// authentication core.
//
// Tokens are drawn from crypto/rand; session tokens and activation codes
// are bearer credentials, so a non-cryptographic generator is not
// acceptable here.
package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the work factor of 12 the account records were
// hashed with; lowering it would silently weaken new hashes.
const BcryptCost = 12

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	// SessionTokenLength is the length of a session bearer token.
	SessionTokenLength = 64
	// ActivationCodeLength is the length of a one-time activation code.
	ActivationCodeLength = 16
)

// HashPassword returns the bcrypt hash of the plaintext.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A malformed or empty hash verifies as false, never as an error.
func VerifyPassword(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// RandomToken returns a string of length characters drawn uniformly from
// the 62-character alphanumeric alphabet using crypto/rand.
func RandomToken(length int) (string, error) {
	max := big.NewInt(int64(len(tokenAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("random token: %w", err)
		}
		out[i] = tokenAlphabet[n.Int64()]
	}
	return string(out), nil
}
