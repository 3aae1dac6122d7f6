package memory

import (
	"context"
	"sync"

	"pet-store/internal/domain/petstore"
)

// state es el "schema" in-memory. Las transacciones trabajan sobre un clon
// y sólo lo publican al hacer commit.
type state struct {
	petStores map[int64]petstore.PetStore
	employees map[int64]petstore.Employee
	customers map[int64]petstore.Customer

	// customerID -> set de petStoreID (tabla pet_store_customer)
	links map[int64]map[int64]struct{}

	nextPetStoreID int64
	nextEmployeeID int64
	nextCustomerID int64
}

func newState() *state {
	return &state{
		petStores: make(map[int64]petstore.PetStore),
		employees: make(map[int64]petstore.Employee),
		customers: make(map[int64]petstore.Customer),
		links:     make(map[int64]map[int64]struct{}),
	}
}

func (s *state) clone() *state {
	c := &state{
		petStores:      make(map[int64]petstore.PetStore, len(s.petStores)),
		employees:      make(map[int64]petstore.Employee, len(s.employees)),
		customers:      make(map[int64]petstore.Customer, len(s.customers)),
		links:          make(map[int64]map[int64]struct{}, len(s.links)),
		nextPetStoreID: s.nextPetStoreID,
		nextEmployeeID: s.nextEmployeeID,
		nextCustomerID: s.nextCustomerID,
	}
	for k, v := range s.petStores {
		c.petStores[k] = v
	}
	for k, v := range s.employees {
		c.employees[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, set := range s.links {
		cp := make(map[int64]struct{}, len(set))
		for id := range set {
			cp[id] = struct{}{}
		}
		c.links[k] = cp
	}
	return c
}

// Store implementa petstore.Store sin base de datos (modo dev / tests).
type Store struct {
	mu    sync.RWMutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) WithinTx(ctx context.Context, opts petstore.TxOptions, fn func(ctx context.Context, repos petstore.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if opts.ReadOnly {
		s.mu.RLock()
		defer s.mu.RUnlock()
		// Clon igual: un fn de sólo lectura que escriba no debe ensuciar el estado.
		return fn(ctx, reposFor(s.state.clone()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, reposFor(work)); err != nil {
		return err
	}
	s.state = work
	return nil
}

func reposFor(st *state) petstore.Repositories {
	return petstore.Repositories{
		PetStores: &petStoreRepo{st: st},
		Employees: &employeeRepo{st: st},
		Customers: &customerRepo{st: st},
	}
}
