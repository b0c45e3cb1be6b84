package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a bcrypt hash binding the user name to the password.
// The result is a single opaque string suitable for storage.
func HashPassword(name, password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(name+password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches the stored hash for name.
// Hashes in the legacy "salt,digest" format are still accepted so that
// records written by the old scheme keep verifying; new hashes are bcrypt.
func VerifyPassword(name, password, stored string) bool {
	if salt, _, ok := strings.Cut(stored, ","); ok {
		recomputed := LegacyHash(name, password, salt)
		return subtle.ConstantTimeCompare([]byte(stored), []byte(recomputed)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(name+password)) == nil
}

// LegacyHash reproduces the historical salted SHA-256 format
// "salt,hex(sha256(name+password+salt))". Kept for verification only.
func LegacyHash(name, password, salt string) string {
	sum := sha256.Sum256([]byte(name + password + salt))
	return salt + "," + hex.EncodeToString(sum[:])
}
