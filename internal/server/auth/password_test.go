package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	encoded, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "argon2id$"))
	assert.NotContains(t, encoded, "s3cret")
	assert.True(t, VerifyPassword(encoded, "s3cret"))
	assert.False(t, VerifyPassword(encoded, "S3cret"))
	assert.False(t, VerifyPassword(encoded, ""))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "two hashes of the same password must differ by salt")
	assert.True(t, VerifyPassword(a, "same"))
	assert.True(t, VerifyPassword(b, "same"))
}

func TestHashPassword_Empty(t *testing.T) {
	t.Parallel()

	_, err := HashPassword("")
	require.Error(t, err)
}

func TestVerifyPassword_MalformedEncodings(t *testing.T) {
	t.Parallel()

	for _, encoded := range []string{
		"",
		"argon2id",
		"argon2id$zz$zz",
		"scrypt$00$00",
		"argon2id$00$not-hex",
	} {
		assert.False(t, VerifyPassword(encoded, "pw"), "encoding %q must not verify", encoded)
	}
}
