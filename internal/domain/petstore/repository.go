package petstore

import "context"

// Los repos devuelven un error tipado errors.NotFound (juju/errors)
// cuando FindByID no encuentra el registro.

type PetStoreRepository interface {
	FindByID(ctx context.Context, id int64) (PetStore, error)
	FindAll(ctx context.Context) ([]PetStore, error)
	// Save inserta si ID == 0, si no actualiza. Devuelve el registro persistido.
	Save(ctx context.Context, p PetStore) (PetStore, error)
	Delete(ctx context.Context, p PetStore) error
}

type EmployeeRepository interface {
	FindByID(ctx context.Context, id int64) (Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	FindByPetStore(ctx context.Context, petStoreID int64) ([]Employee, error)
	Save(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, e Employee) error
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id int64) (Customer, error)
	FindAll(ctx context.Context) ([]Customer, error)
	FindByPetStore(ctx context.Context, petStoreID int64) ([]Customer, error)
	// PetStoreIDs lista las tiendas asociadas al cliente.
	PetStoreIDs(ctx context.Context, customerID int64) ([]int64, error)
	// AddPetStore asocia cliente y tienda. Idempotente.
	AddPetStore(ctx context.Context, customerID, petStoreID int64) error
	Save(ctx context.Context, c Customer) (Customer, error)
	Delete(ctx context.Context, c Customer) error
}

// Repositories agrupa los repos ligados a una misma transacción.
type Repositories struct {
	PetStores PetStoreRepository
	Employees EmployeeRepository
	Customers CustomerRepository
}

type TxOptions struct {
	ReadOnly bool
}

// Store es la unidad de trabajo: WithinTx abre una transacción, ejecuta fn
// con repos ligados a ella y hace commit sólo si fn devuelve nil.
// Cualquier error (o panic) hace rollback.
type Store interface {
	WithinTx(ctx context.Context, opts TxOptions, fn func(ctx context.Context, repos Repositories) error) error
}
