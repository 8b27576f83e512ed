// Package auth gates admin operations behind a single shared secret. The
// secret is stored as a bcrypt hash in a file; requests carry it as the
// password of HTTP Basic credentials with the fixed username "admin".
package auth

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Username is the fixed Basic-auth username for the shared admin secret.
const Username = "admin"

// Verifier checks candidate passwords against the stored admin hash.
type Verifier struct {
	hash []byte
}

// LoadVerifier reads the bcrypt hash file once at startup. Surrounding
// whitespace (trailing newline from hashpass) is ignored.
func LoadVerifier(path string) (*Verifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read admin hash %s: %w", path, err)
	}
	hash := strings.TrimSpace(string(data))
	if hash == "" {
		return nil, fmt.Errorf("admin hash %s is empty", path)
	}
	return &Verifier{hash: []byte(hash)}, nil
}

// NewVerifier wraps an already-loaded bcrypt hash. Used by tests.
func NewVerifier(hash []byte) *Verifier {
	return &Verifier{hash: hash}
}

// Verify reports whether password matches the admin hash. It never returns
// an error for a wrong password; only a corrupt hash is an error.
func (v *Verifier) Verify(password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case err == bcrypt.ErrMismatchedHashAndPassword:
		return false, nil
	default:
		return false, fmt.Errorf("compare admin hash: %w", err)
	}
}

// HashPassword produces a bcrypt hash suitable for the hash file.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
