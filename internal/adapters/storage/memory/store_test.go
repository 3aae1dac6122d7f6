package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-store/internal/adapters/storage/memory"
	"pet-store/internal/adapters/storage/storagetest"
	"pet-store/internal/domain/petstore"
)

func TestStore_Conformance(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) petstore.Store {
		return memory.NewStore()
	})
}

func TestStore_PanicDiscardsWork(t *testing.T) {
	store := memory.NewStore()

	assert.Panics(t, func() {
		_ = store.WithinTx(context.Background(), petstore.TxOptions{}, func(ctx context.Context, repos petstore.Repositories) error {
			_, _ = repos.PetStores.Save(ctx, petstore.PetStore{Name: "half-written"})
			panic("boom")
		})
	})

	// El lock se liberó y el estado no cambió.
	err := store.WithinTx(context.Background(), petstore.TxOptions{ReadOnly: true}, func(ctx context.Context, repos petstore.Repositories) error {
		items, err := repos.PetStores.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_CanceledContext(t *testing.T) {
	store := memory.NewStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.WithinTx(ctx, petstore.TxOptions{}, func(ctx context.Context, repos petstore.Repositories) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
