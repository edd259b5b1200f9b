// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

// PasswordService hashes and verifies account passwords.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a stored hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength checks minimum password requirements.
	ValidatePasswordStrength(password string) error
}
