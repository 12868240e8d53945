package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOid(t *testing.T) {
	oid, err := Oid(" 66c62a4f9b1e8a0012345678 ")
	require.NoError(t, err)
	assert.Equal(t, "66c62a4f9b1e8a0012345678", oid.Hex())

	_, err = Oid("bogus")
	assert.Error(t, err)
}

func TestNewHexID_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewHexID()
		assert.Len(t, id, 24)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
