package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: subject})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseProfileID(t *testing.T) {
	profileID := uuid.New()
	parser := NewParser("access-secret")

	got, err := parser.ParseProfileID(signToken(t, "access-secret", profileID.String()))
	require.NoError(t, err)
	require.Equal(t, profileID, got)
}

func TestParseProfileIDRejectsWrongSecret(t *testing.T) {
	parser := NewParser("access-secret")

	_, err := parser.ParseProfileID(signToken(t, "other-secret", uuid.NewString()))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseProfileIDRejectsBadSubject(t *testing.T) {
	parser := NewParser("access-secret")

	_, err := parser.ParseProfileID(signToken(t, "access-secret", "not-a-uuid"))
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = parser.ParseProfileID("garbage")
	require.ErrorIs(t, err, ErrInvalidToken)
}
