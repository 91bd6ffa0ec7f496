package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTClaims(t *testing.T) {
	signed, err := GenerateJWT(42, "sam@example.com", "testsecret")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("testsecret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "sam@example.com", claims["email"])
	assert.NotNil(t, claims["exp"])
}

func TestGenerateJWTWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(1, "sam@example.com", "testsecret")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("othersecret"), nil
	})
	assert.Error(t, err)
}

func TestGenerateRandomTokenLength(t *testing.T) {
	tok := GenerateRandomToken(6)
	assert.Len(t, tok, 6)
	assert.NotEqual(t, tok, GenerateRandomToken(6))
}
