package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	in := SessionClaims{
		UserID:      42,
		Role:        "admin",
		DisplayName: "Somchai",
		PictureURL:  "https://example.com/p.jpg",
	}
	signed, exp, err := NewSessionToken(testSecret, in, 7)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), exp, time.Minute)

	out, err := ParseSessionToken(testSecret, signed)
	require.NoError(t, err)
	assert.Equal(t, in.UserID, out.UserID)
	assert.Equal(t, in.Role, out.Role)
	assert.Equal(t, in.DisplayName, out.DisplayName)
	assert.Equal(t, in.PictureURL, out.PictureURL)
	assert.WithinDuration(t, exp, out.ExpiresAt, time.Second)
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	signed, _, err := NewSessionToken(testSecret, SessionClaims{UserID: 1, Role: "user"}, 7)
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenRejectsExpired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "1",
		"role": "user",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenRejectsMissingClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{name: "no subject", claims: jwt.MapClaims{"role": "user"}},
		{name: "zero subject", claims: jwt.MapClaims{"sub": "0", "role": "user"}},
		{name: "no role", claims: jwt.MapClaims{"sub": "1"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tc.claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = ParseSessionToken(testSecret, signed)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParseSessionTokenRejectsUnsignedAlg(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1", "role": "user"})
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseSessionToken(testSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
