package passwordservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	h := NewHasherWithCost(bcrypt.MinCost)

	hash, err := h.HashPassword("user123")
	require.NoError(t, err)
	assert.NotEqual(t, "user123", hash)

	assert.NoError(t, h.ComparePasswordHash("user123", hash))
	assert.Error(t, h.ComparePasswordHash("wrong", hash))
	assert.Error(t, h.ComparePasswordHash("user123", "not-a-hash"))
}

func TestNewHasherWithCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasherWithCost(100).cost)
	assert.Equal(t, bcrypt.MinCost, NewHasherWithCost(bcrypt.MinCost).cost)
}
