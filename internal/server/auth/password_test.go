package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.DefaultCost)

	digest, err := hasher.Hash("Secret123!")
	require.NoError(t, err)

	assert.NotEqual(t, "Secret123!", digest)
	assert.True(t, hasher.Verify("Secret123!", digest))
	assert.False(t, hasher.Verify("secret123!", digest))
	assert.False(t, hasher.Verify("", digest))
}

func TestPasswordHasher_SaltedDigests(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.DefaultCost)

	first, err := hasher.Hash("Secret123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Secret123!")
	require.NoError(t, err)

	// соль делает дайджесты одного пароля разными
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("Secret123!", first))
	assert.True(t, hasher.Verify("Secret123!", second))
}

func TestNewPasswordHasher_CostFloor(t *testing.T) {
	hasher := NewPasswordHasher(1)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewPasswordHasher(12)
	assert.Equal(t, 12, hasher.cost)
}
