// Package auth implements the admin password gate that protects content
// mutation endpoints.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dailydoses/humor-backend/internal/domain"
)

// Gate verifies the shared admin password supplied with mutation requests.
// The stored bcrypt hash is loaded once at process start; rotating the
// password requires a restart.
type Gate struct {
	production bool
	storedHash string
}

// NewGate creates an admin gate. Outside production every password passes,
// so local development does not need the hash provisioned.
func NewGate(production bool, storedHash string) *Gate {
	return &Gate{production: production, storedHash: storedHash}
}

// Verify checks the candidate password against the stored hash.
// Returns domain.ErrUnauthorized on mismatch or when no hash is provisioned.
func (g *Gate) Verify(candidate string) error {
	if !g.production {
		return nil
	}

	if g.storedHash == "" {
		return fmt.Errorf("admin password hash not provisioned: %w", domain.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(g.storedHash), []byte(candidate)); err != nil {
		return domain.ErrUnauthorized
	}

	return nil
}

// HashPassword produces the bcrypt hash stored in app_settings. Used by
// provisioning tooling, not by the request path.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
