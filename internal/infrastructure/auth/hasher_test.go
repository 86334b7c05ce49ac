package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, hasher.Verify("password123", hash))
	assert.Error(t, hasher.Verify("wrong-password", hash))
}

func TestNewBcryptPasswordHasher_ClampsCost(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
