// Package storagetest contiene la suite de conformidad que cada adapter de
// storage debe pasar (memory, postgres, sqlite).
package storagetest

import (
	"context"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-store/internal/domain/petstore"
)

// NewStoreFunc debe devolver un store vacío por cada llamada.
type NewStoreFunc func(t *testing.T) petstore.Store

var errBoom = errors.New("boom")

func Run(t *testing.T, newStore NewStoreFunc) {
	t.Run("PetStoreSaveAssignsDistinctIDs", func(t *testing.T) {
		store := newStore(t)

		var a, b petstore.PetStore
		write(t, store, func(ctx context.Context, repos petstore.Repositories) {
			var err error
			a, err = repos.PetStores.Save(ctx, petstore.PetStore{Name: "A"})
			require.NoError(t, err)
			b, err = repos.PetStores.Save(ctx, petstore.PetStore{Name: "B"})
			require.NoError(t, err)
		})

		assert.NotZero(t, a.ID)
		assert.NotZero(t, b.ID)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("PetStoreUpdateKeepsID", func(t *testing.T) {
		store := newStore(t)
		p := seedPetStore(t, store, "Pets R Us")

		write(t, store, func(ctx context.Context, repos petstore.Repositories) {
			p.City = "Springfield"
			updated, err := repos.PetStores.Save(ctx, p)
			require.NoError(t, err)
			assert.Equal(t, p.ID, updated.ID)
		})

		read(t, store, func(ctx context.Context, repos petstore.Repositories) {
			got, err := repos.PetStores.FindByID(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, p, got)
		})
	})

	t.Run("FindByIDMissIsNotFound", func(t *testing.T) {
		store := newStore(t)

		read(t, store, func(ctx context.Context, repos petstore.Repositories) {
			_, err := repos.PetStores.FindByID(ctx, 9999)
			assert.True(t, errors.Is(err, errors.NotFound), "pet store: %v", err)

			_, err = repos.Employees.FindByID(ctx, 9999)
			assert.True(t, errors.Is(err, errors.NotFound), "employee: %v", err)

			_, err = repos.Customers.FindByID(ctx, 9999)
			assert.True(t, errors.Is(err, errors.NotFound), "customer: %v", err)
		})
	})

	t.Run("FindAllOrderedByID", func(t *testing.T) {
		store := newStore(t)
		first := seedPetStore(t, store, "first")
		second := seedPetStore(t, store, "second")

		read(t, store, func(ctx context.Context, repos petstore.Repositories) {
			items, err := repos.PetStores.FindAll(ctx)
			require.NoError(t, err)
			require.Len(t, items, 2)
			assert.Equal(t, first.ID, items[0].ID)
			assert.Equal(t, second.ID, items[1].ID)
		})
	})

	t.Run("EmployeesByPetStore", func(t *testing.T) {
		store := newStore(t)
		a := seedPetStore(t, store, "A")
		b := seedPetStore(t, store, "B")

		var emp petstore.Employee
		write(t, store, func(ctx context.Context, repos petstore.Repositories) {
			var err error
			emp, err = repos.Employees.Save(ctx, petstore.Employee{
				PetStoreID: a.ID,
				FirstName:  "Ada",
				LastName:   "Lovelace",
				Phone:      "555-0100",
				JobTitle:   "Manager",
			})
			require.NoError(t, err)
			_, err = repos.Employees.Save(ctx, petstore.Employee{PetStoreID: b.ID, FirstName: "Bob"})
			require.NoError(t, err)
		})

		read(t, store, func(ctx context.Context, repos petstore.Repositories) {
			got, err := repos.Employees.FindByPetStore(ctx, a.ID)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, emp, got[0])

			all, err := repos.Employees.FindAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 2)
		})

		write(t, store, func(ctx context.Context, repos petstore.Repositories) {
			require.NoError(t, repos.Employees.Delete(ctx, emp))
			_, err := repos.Employees.FindByID(ctx, emp.ID)
			assert.True(t, errors.Is(err, errors.NotFound))
		})
	})

	t.Run("CustomerAssociations", func(t *testing.T) {
		store := newStore(t)
		a := seedPetStore(t, store, "A")
		b := seedPetStore(t, store, "B")

		var cust petstore.Customer
		write(t, store, func(ctx context.Context, repos petstore.Repositories) {
			var err error
			cust, err = repos.Customers.Save(ctx, petstore.Customer{
				FirstName: "Grace",
				LastName:  "Hopper",
				Email:     "grace@example.com",
			})
			require.NoError(t, err)

			require.NoError(t, repos.Customers.AddPetStore(ctx, cust.ID, a.ID))
			// idempotente
			require.NoError(t, repos.Customers.AddPetStore(ctx, cust.ID, a.ID))
			require.NoError(t, repos.Customers.AddPetStore(ctx, cust.ID, b.ID))
		})

		read(t, store, func(ctx context.Context, repos petstore.Repositories) {
			ids, err := repos.Customers.PetStoreIDs(ctx, cust.ID)
			require.NoError(t, err)
			assert.ElementsMatch(t, []int64{a.ID, b.ID}, ids)

			got, err := repos.Customers.FindByPetStore(ctx, b.ID)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, cust, got[0])

			all, err := repos.Customers.FindAll(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})

		write(t, store, func(ctx context.Context, repos petstore.Repositories) {
			require.NoError(t, repos.Customers.Delete(ctx, cust))
		})

		read(t, store, func(ctx context.Context, repos petstore.Repositories) {
			got, err := repos.Customers.FindByPetStore(ctx, a.ID)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	})

	t.Run("DeletePetStoreCascades", func(t *testing.T) {
		store := newStore(t)
		p := seedPetStore(t, store, "doomed")

		var emp petstore.Employee
		var cust petstore.Customer
		write(t, store, func(ctx context.Context, repos petstore.Repositories) {
			var err error
			emp, err = repos.Employees.Save(ctx, petstore.Employee{PetStoreID: p.ID, FirstName: "E"})
			require.NoError(t, err)
			cust, err = repos.Customers.Save(ctx, petstore.Customer{FirstName: "C"})
			require.NoError(t, err)
			require.NoError(t, repos.Customers.AddPetStore(ctx, cust.ID, p.ID))
		})

		write(t, store, func(ctx context.Context, repos petstore.Repositories) {
			require.NoError(t, repos.PetStores.Delete(ctx, p))
		})

		read(t, store, func(ctx context.Context, repos petstore.Repositories) {
			_, err := repos.PetStores.FindByID(ctx, p.ID)
			assert.True(t, errors.Is(err, errors.NotFound))

			_, err = repos.Employees.FindByID(ctx, emp.ID)
			assert.True(t, errors.Is(err, errors.NotFound))

			// el cliente sobrevive, la asociación no
			_, err = repos.Customers.FindByID(ctx, cust.ID)
			require.NoError(t, err)
			ids, err := repos.Customers.PetStoreIDs(ctx, cust.ID)
			require.NoError(t, err)
			assert.Empty(t, ids)
		})
	})

	t.Run("RollbackOnError", func(t *testing.T) {
		store := newStore(t)

		err := store.WithinTx(context.Background(), petstore.TxOptions{}, func(ctx context.Context, repos petstore.Repositories) error {
			if _, err := repos.PetStores.Save(ctx, petstore.PetStore{Name: "ghost"}); err != nil {
				return err
			}
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)

		read(t, store, func(ctx context.Context, repos petstore.Repositories) {
			items, err := repos.PetStores.FindAll(ctx)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	})
}

func seedPetStore(t *testing.T, store petstore.Store, name string) petstore.PetStore {
	t.Helper()

	var p petstore.PetStore
	write(t, store, func(ctx context.Context, repos petstore.Repositories) {
		var err error
		p, err = repos.PetStores.Save(ctx, petstore.PetStore{
			Name:    name,
			Address: "1 Main St",
			City:    "Boise",
			State:   "ID",
			Zip:     "83702",
			Phone:   "555-0199",
		})
		require.NoError(t, err)
	})
	return p
}

func write(t *testing.T, store petstore.Store, fn func(ctx context.Context, repos petstore.Repositories)) {
	t.Helper()
	runTx(t, store, petstore.TxOptions{}, fn)
}

func read(t *testing.T, store petstore.Store, fn func(ctx context.Context, repos petstore.Repositories)) {
	t.Helper()
	runTx(t, store, petstore.TxOptions{ReadOnly: true}, fn)
}

func runTx(t *testing.T, store petstore.Store, opts petstore.TxOptions, fn func(ctx context.Context, repos petstore.Repositories)) {
	t.Helper()
	err := store.WithinTx(context.Background(), opts, func(ctx context.Context, repos petstore.Repositories) error {
		fn(ctx, repos)
		return nil
	})
	require.NoError(t, err)
}
