package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Secret123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)
	assert.True(t, CheckPasswordHash("Secret123", hash))
	assert.False(t, CheckPasswordHash("Secret124", hash))
	assert.False(t, CheckPasswordHash("Secret123", "not-a-hash"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	hash, err = HashPassword("Secret123", 0)
	require.NoError(t, err)
	cost, err = bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
