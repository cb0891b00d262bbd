package jwt

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	token, err := Generate("secreto", "u-1", "Ana", "donaciones-api", 5)
	require.NoError(t, err)

	claims, err := Parse("secreto", token, jwt.WithIssuer("donaciones-api"))
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, "u-1", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	other, err := Generate("secreto", "u-1", "Ana", "donaciones-api", 5)
	require.NoError(t, err)
	otherClaims, err := Parse("secreto", other)
	require.NoError(t, err)
	assert.NotEqual(t, claims.ID, otherClaims.ID)
}

func TestParse_Rechaza(t *testing.T) {
	token, err := Generate("secreto", "u-1", "", "x", 5)
	require.NoError(t, err)

	_, err = Parse("otro", token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = Parse("secreto", token, jwt.WithIssuer("donaciones-api"))
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	expired, err := Generate("secreto", "u-1", "", "x", -1)
	require.NoError(t, err)
	_, err = Parse("secreto", expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	anonymous, err := Generate("secreto", "", "", "x", 5)
	require.NoError(t, err)
	_, err = Parse("secreto", anonymous)
	assert.ErrorIs(t, err, ErrInvalidClaims)

	_, err = Parse("", token)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = Generate("", "u-1", "", "x", 5)
	assert.ErrorIs(t, err, ErrEmptySecret)
}
