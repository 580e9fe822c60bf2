package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XidanAbds29/huehouse-api/initializers"
	"github.com/XidanAbds29/huehouse-api/models"
)

func TestJWTRoundTrip(t *testing.T) {
	initializers.Cfg.JWTSecret = "test-secret"

	user := models.User{Email: "jane@example.com", Role: models.RoleAdmin}
	user.ID = 7

	tokenString, err := GenerateJWT(user)
	require.NoError(t, err)

	claims, err := ParseJWT(tokenString)
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, models.RoleAdmin, claims["role"])

	userID, ok := UserIDFromClaims(claims)
	require.True(t, ok)
	assert.Equal(t, uint(7), userID)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	initializers.Cfg.JWTSecret = "test-secret"
	user := models.User{Email: "jane@example.com", Role: models.RoleUser}
	tokenString, err := GenerateJWT(user)
	require.NoError(t, err)

	initializers.Cfg.JWTSecret = "another-secret"
	_, err = ParseJWT(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseJWT_Garbage(t *testing.T) {
	initializers.Cfg.JWTSecret = "test-secret"
	_, err := ParseJWT("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
