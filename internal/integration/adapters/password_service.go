// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/household-ledger/backend/internal/application/adapter"
)

// Cost 12 keeps a hash around a quarter second on current hardware, which is
// acceptable for a household app's login volume.
const bcryptCost = 12

const minPasswordLength = 8

type passwordService struct{}

// NewPasswordService returns the bcrypt-backed password service.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

func (s *passwordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength enforces the minimum length; anything longer is
// accepted, composition rules are deliberately not imposed.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}
