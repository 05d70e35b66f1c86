package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPITokenRoundTrip(t *testing.T) {
	tok, err := NewAPIToken("secret", 7, "Admin User", "admin@portfolio.com", 5)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	uid, err := ParseAPIToken("secret", tok.Token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, uid)
}

func TestAPITokenWrongSecret(t *testing.T) {
	tok, err := NewAPIToken("secret", 7, "Admin", "a@b.co", 5)
	require.NoError(t, err)

	_, err = ParseAPIToken("other", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidAPIToken)
}

func TestParseAPITokenGarbage(t *testing.T) {
	_, err := ParseAPIToken("secret", "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidAPIToken)
}

func TestResetTokenHashIsStable(t *testing.T) {
	raw, err := NewResetRaw()
	require.NoError(t, err)
	assert.Len(t, raw, 64)

	assert.Equal(t, HashResetRaw(raw), HashResetRaw(raw))
	other, err := NewResetRaw()
	require.NoError(t, err)
	assert.NotEqual(t, HashResetRaw(raw), HashResetRaw(other))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "admin123"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}
