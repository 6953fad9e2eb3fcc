package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/vkazmin/accountd/internal/common"
)

// PasswordHashCost is the bcrypt cost factor shared by every hash the service
// produces, so all accounts in one deployment carry the same verification
// cost. Changing it only affects new hashes; existing ones keep the cost they
// were minted with.
const PasswordHashCost = 10

// HashPassword derives a salted one-way hash of plaintext. The salt is chosen
// by bcrypt per call, so two hashes of the same input differ.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordHashCost)
	if err != nil {
		return "", common.ErrHashingFailure
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches hash. A mismatch is a
// normal outcome, not an error; a malformed stored hash also reports false.
func VerifyPassword(plaintext, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false
	}
	// Comparison itself failed (e.g. the stored value is not a bcrypt hash).
	// For authentication purposes that is indistinguishable from a mismatch.
	return false
}
