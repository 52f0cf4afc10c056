package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashRoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Verify("secret1", hash))
	assert.False(t, hasher.Verify("secret2", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestHashesAreSalted(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secret1", first))
	assert.True(t, hasher.Verify("secret1", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	assert.False(t, hasher.Verify("secret1", "not-a-bcrypt-hash"))
}

func TestCostFloor(t *testing.T) {
	hasher := NewPasswordHasher(0)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
