// Package security provides the password hashing primitive used by the
// account service.
package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/resumeforge/resumeforge-server/internal/model"
)

var _ model.PasswordHasher = (*BcryptHasher)(nil)

// BcryptHasher hashes passwords with bcrypt. Comparison is constant-time.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the default cost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash returns the bcrypt digest of the password.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Matches reports whether the password matches the stored digest.
func (h *BcryptHasher) Matches(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
