package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("cat")
	require.NoError(t, err)

	assert.NotEqual(t, "cat", hash)
	assert.True(t, CheckPassword(hash, "cat"))
	assert.False(t, CheckPassword(hash, "dog"))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "secret"))
	assert.True(t, CheckPassword(second, "secret"))
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-hash", "secret"))
}
