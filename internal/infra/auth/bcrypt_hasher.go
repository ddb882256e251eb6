// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"bizops/config"
	domainerrors "bizops/internal/domain/errors"
	"bizops/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidateStrength checks the password against the configured policy.
// With no policy configured only a minimum length of 8 is enforced.
func (h *bcryptHasher) ValidateStrength(password string) error {
	policy := h.strength
	if policy == nil {
		policy = &config.PasswordStrengthConfig{MinLength: 8}
	}

	if len(password) < policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("密碼長度不足")
	}
	if policy.MaxLength > 0 && len(password) > policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("密碼長度超過上限")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case policy.RequireUppercase && !hasUpper:
		return domainerrors.ErrPasswordStrength.WithDetails("密碼必須包含大寫字母")
	case policy.RequireLowercase && !hasLower:
		return domainerrors.ErrPasswordStrength.WithDetails("密碼必須包含小寫字母")
	case policy.RequireNumbers && !hasNumber:
		return domainerrors.ErrPasswordStrength.WithDetails("密碼必須包含數字")
	case policy.RequireSpecial && !hasSpecial:
		return domainerrors.ErrPasswordStrength.WithDetails("密碼必須包含特殊符號")
	}

	return nil
}
