// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing and verification.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password against a stored hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength checks a password against minimum requirements.
	ValidatePasswordStrength(password string) error
}
