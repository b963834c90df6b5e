package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	mathrand "math/rand"
)

// Alphanumeric is the alphabet used for generated plaintext passwords
const Alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var randomRead = rand.Read

// HashPassword returns the lowercase hex SHA-256 digest of a password
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword compares a password with a hex SHA-256 hash
func CheckPassword(password, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(hash)) == 1
}

// RandomString draws n characters of alphabet from rnd.
// The caller owns rnd so generation stays reproducible for a fixed seed.
func RandomString(rnd *mathrand.Rand, alphabet string, n int) string {
	if n <= 0 || alphabet == "" {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rnd.Intn(len(alphabet))]
	}
	return string(b)
}

// GenerateRandomToken generates a random hex token from length bytes of OS entropy
func GenerateRandomToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
