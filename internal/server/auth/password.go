package auth

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/psustentables/taskboard/internal/common"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters. Changing them invalidates stored hashes, so new
// values would need a new scheme prefix.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 32

	schemePrefix = "argon2id"
)

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword derives a salted argon2id hash of the raw password and
// returns it in the storable "argon2id$<salt>$<hash>" form.
func HashPassword(rawPassword string) (string, error) {
	if rawPassword == "" {
		return "", fmt.Errorf("empty password")
	}

	salt := common.GenerateRandByteArray(saltLen)
	key := deriveKey([]byte(rawPassword), salt)

	return strings.Join([]string{schemePrefix, hex.EncodeToString(salt), hex.EncodeToString(key)}, "$"), nil
}

// VerifyPassword reports whether rawPassword matches the stored encoded
// hash. Comparison of the derived keys is constant time.
func VerifyPassword(encoded, rawPassword string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != schemePrefix {
		return false
	}

	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	key, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}

	candidate := deriveKey([]byte(rawPassword), salt)
	return subtle.ConstantTimeCompare(key, candidate) == 1
}
