package auth

import (
	"testing"

	"bizops/config"
	domainerrors "bizops/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			MaxLength:        72,
		},
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	validPasswords := []string{
		"StrongPass123",
		"MySecurePass1",
		"Valid2024Phrase",
	}
	for _, password := range validPasswords {
		assert.NoError(t, hasher.ValidateStrength(password), "expected valid password: %s", password)
	}

	invalidPasswords := []string{
		"123",          // too short
		"PASSWORD123",  // no lowercase
		"password123",  // no uppercase
		"PasswordOnly", // no numbers
	}
	for _, password := range invalidPasswords {
		err := hasher.ValidateStrength(password)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength, "expected rejection for: %s", password)
	}
}

func TestBcryptHasher_ValidateStrengthDefaults(t *testing.T) {
	// Without a policy only the minimum length applies.
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	assert.NoError(t, hasher.ValidateStrength("lowercaseonly"))
	assert.Error(t, hasher.ValidateStrength("short"))
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	hash, err := hasher.Hash("StrongPass123")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
