package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDTokensIDs(t *testing.T) {
	var tokens UUIDTokens
	a, b := tokens.NewID(), tokens.NewID()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestUUIDTokensStampsSortInMintOrder(t *testing.T) {
	var tokens UUIDTokens
	prev := tokens.NewStamp()
	for i := 0; i < 1000; i++ {
		next := tokens.NewStamp()
		require.Greater(t, next, prev)
		prev = next
	}
	parsed, err := uuid.Parse(prev)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
