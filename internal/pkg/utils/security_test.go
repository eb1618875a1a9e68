package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := "unit-test-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateJWT("user-42", secret, time.Hour)
		require.NoError(t, err)

		userID, err := ParseJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "user-42", userID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateJWT("user-42", secret, time.Hour)
		require.NoError(t, err)

		_, err = ParseJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := GenerateJWT("user-42", secret, -time.Minute)
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", SanitizeEmail("  Ada@Example.COM "))
	assert.Equal(t, "", SanitizeEmail("   "))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("hunter2hunter2", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
