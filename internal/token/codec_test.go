package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		user   string
		issued int64
	}{
		{"admin", "admin@portfolio.com", "Admin User", 1700000000000},
		{"unicode name", "tsegaye.kebede@example.com", "Tsegaye Kebede", 1},
		{"zero timestamp", "a@b.co", "A", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := Encode(tt.email, tt.user, tt.issued)
			require.NoError(t, err)

			got, err := Decode(tok)
			require.NoError(t, err)
			assert.Equal(t, tt.email, got.Email)
			assert.Equal(t, tt.user, got.Name)
			assert.Equal(t, tt.issued, got.IssuedAt)
		})
	}
}

func TestEncodeRejectsDelimiter(t *testing.T) {
	_, err := Encode("evil:admin@portfolio.com", "Someone", 1)
	assert.ErrorIs(t, err, ErrDelimiterInField)

	_, err = Encode("ok@example.com", "First:Last", 1)
	assert.ErrorIs(t, err, ErrDelimiterInField)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		tok  string
	}{
		{"garbage", "garbage"},
		{"empty", ""},
		{"wrong scheme", "session:a@b.co:A:123"},
		{"too few segments", "user-data:a@b.co:A"},
		{"non numeric timestamp", "user-data:a@b.co:A:soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.tok)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestDecodeIgnoresExtraSegments(t *testing.T) {
	// The original parser only looked at the first four segments.
	got, err := Decode("user-data:a@b.co:A:42:extra")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.IssuedAt)
}
