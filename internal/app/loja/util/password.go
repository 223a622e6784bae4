package util

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces the hex SHA-256 digest the existing user base
// was stored with. New code keeps writing this format so old clients
// and database dumps stay interchangeable.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword verifies a password against a stored hash. Legacy rows
// hold hex SHA-256 digests; rows rewritten by newer tooling hold
// bcrypt hashes, recognizable by their "$2" prefix.
func CheckPassword(password, hash string) bool {
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	digest := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(hash)) == 1
}

// HashPasswordBcrypt is the forward path for rows being migrated off
// the SHA-256 format.
func HashPasswordBcrypt(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
