package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"content-platform-service/internal/custom_errors"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// HashPassword derives an argon2id hash and encodes it together with the
// salt as "salt$hash" (both base64).
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(key), nil
}

// VerifyPassword re-derives the key from the candidate password and the
// stored salt and compares in constant time.
func VerifyPassword(password, encoded string) error {
	parts := strings.SplitN(encoded, "$", 2)
	if len(parts) != 2 {
		return custom_errors.ErrInvalidCredentials
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return custom_errors.ErrInvalidCredentials
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return custom_errors.ErrInvalidCredentials
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	if subtle.ConstantTimeCompare(key, expected) != 1 {
		return custom_errors.ErrInvalidCredentials
	}
	return nil
}
