package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash1, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash1)
	assert.NotEqual(t, "secreto123", hash1)

	// Independent salting: same input, distinct digests.
	hash2, err := HashPassword("secreto123")
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash2)

	// Both digests still verify.
	assert.True(t, CheckPassword("secreto123", hash1))
	assert.True(t, CheckPassword("secreto123", hash2))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreto123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("secreto123", hash))
	assert.False(t, CheckPassword("otro-password", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("secreto123", "not-a-bcrypt-digest"))
}
