package storage

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/miniblog/config"
	"github.com/cppla/miniblog/models"
)

func TestOpenMemory(t *testing.T) {
	store, closer, err := Open(context.Background(), config.AppConfig{StoreDriver: config.DriverMemory, BlogTable: "BlogPosts"})
	require.NoError(t, err)
	assert.NoError(t, closer())
	runStoreContract(t, store)
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.AppConfig{
		StoreDriver: config.DriverRedis,
		BlogTable:   "BlogPosts",
		RedisHost:   mr.Host(),
		RedisPort:   mustPort(t, mr.Port()),
	}
	store, closer, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer() })

	require.NoError(t, store.Put(context.Background(), models.Post{ID: "p1", Title: "T"}))
	assert.True(t, mr.Exists("BlogPosts:p1"))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, _, err := Open(context.Background(), config.AppConfig{StoreDriver: "sqlite"})
	assert.ErrorContains(t, err, `unknown store driver "sqlite"`)
}

func mustPort(t *testing.T, port string) int {
	t.Helper()
	n, err := strconv.Atoi(port)
	require.NoError(t, err)
	return n
}
