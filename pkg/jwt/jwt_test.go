package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateToken(7, "kasir", "Kasir User", "kasir", "v1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "kasir", claims.Username)
	assert.Equal(t, "Kasir User", claims.Name)
	assert.Equal(t, "kasir", claims.Role)
	assert.Equal(t, "v1", claims.TokenVersion)
	assert.Equal(t, "go-laundry-console", claims.Issuer)
}

func TestValidateMalformedToken(t *testing.T) {
	_, err := ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTamperedToken(t *testing.T) {
	token, err := GenerateToken(7, "kasir", "Kasir User", "kasir", "v1")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := GenerateToken(7, "kasir", "Kasir User", "kasir", "v1")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "a-different-secret")
	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
