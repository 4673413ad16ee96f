package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12

	keyAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	keyGroupCount   = 4
	keyGroupLength  = 4
	keyGroupDivider = "-"
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randomRead                 = rand.Read
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// CheckPassword compares a password with a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateRandomToken generates a random token of specified length
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateAccessKey generates an access key in XXXX-XXXX-XXXX-XXXX form
// over uppercase letters and digits.
func GenerateAccessKey() (string, error) {
	raw := make([]byte, keyGroupCount*keyGroupLength)
	if _, err := randomRead(raw); err != nil {
		return "", fmt.Errorf("failed to generate access key: %w", err)
	}

	groups := make([]string, keyGroupCount)
	for g := 0; g < keyGroupCount; g++ {
		chars := make([]byte, keyGroupLength)
		for i := 0; i < keyGroupLength; i++ {
			chars[i] = keyAlphabet[int(raw[g*keyGroupLength+i])%len(keyAlphabet)]
		}
		groups[g] = string(chars)
	}
	return strings.Join(groups, keyGroupDivider), nil
}
