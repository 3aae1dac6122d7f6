package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-store/internal/adapters/storage/memory"
	"pet-store/internal/adapters/storage/sqlite"
	"pet-store/internal/config"
	"pet-store/internal/domain/petstore"
)

func TestOpenStore_Memory(t *testing.T) {
	store, closeFn, err := openStore(context.Background(), config.DatabaseConfig{Driver: config.DriverMemory}, zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &memory.Store{}, store)
	assertUsable(t, store)
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "petstore.db"),
	}

	store, closeFn, err := openStore(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &sqlite.Store{}, store)
	assertUsable(t, store)
}

func TestOpenStore_SQLiteWithoutPath(t *testing.T) {
	_, _, err := openStore(context.Background(), config.DatabaseConfig{Driver: config.DriverSQLite}, zerolog.Nop())
	require.Error(t, err)
}

func assertUsable(t *testing.T, store petstore.Store) {
	t.Helper()

	out, err := petstore.NewService(store).SavePetStore(context.Background(), petstore.PetStoreData{Name: "boot"})
	require.NoError(t, err)
	require.NotNil(t, out.ID)
}
