package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_NotPlaintext(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hash)
	require.True(t, CheckPassword("hunter22", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestCheckPassword_Wrong(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct")
	require.NoError(t, err)
	require.False(t, CheckPassword("incorrect", hash))
	require.False(t, CheckPassword("correct", "not-a-bcrypt-hash"))
}
