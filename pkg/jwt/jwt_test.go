package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, "access", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "access", claims.Type)
}

func TestParseRejectsWrongType(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "refresh", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), "access", token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	assert.Error(t, err)
}

func TestShouldRotate(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", time.Hour)
	require.NoError(t, err)
	claims, err := ParseToken(secret, "access", token)
	require.NoError(t, err)

	assert.False(t, ShouldRotate(claims, 5*time.Minute))
	assert.True(t, ShouldRotate(claims, 2*time.Hour))
}
