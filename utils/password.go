package utils

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
    bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
    return string(bytes), err
}

// CheckPassword compares a plaintext password against its bcrypt hash
func CheckPassword(password, hash string) bool {
    return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateDefaultPassword generates and hashes a random password for accounts
// created by an admin (child accounts, imports)
func CreateDefaultPassword() (string, error) {
    b := make([]byte, 12)
    if _, err := rand.Read(b); err != nil {
        return "", err
    }
    return HashPassword(hex.EncodeToString(b))
}

// RandomToken returns a hex token for email verification and password resets
func RandomToken() (string, error) {
    b := make([]byte, 32)
    if _, err := rand.Read(b); err != nil {
        return "", err
    }
    return hex.EncodeToString(b), nil
}
