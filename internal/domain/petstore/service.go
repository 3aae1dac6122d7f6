package petstore

import (
	"context"
	"fmt"

	"github.com/juju/errors"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

var (
	writeTx = TxOptions{ReadOnly: false}
	readTx  = TxOptions{ReadOnly: true}
)

// SavePetStore crea la tienda si data.ID es nil; si no, la carga y actualiza.
// Devuelve la vista completa (con empleados y clientes).
func (s *Service) SavePetStore(ctx context.Context, data PetStoreData) (PetStoreData, error) {
	var out PetStoreData
	err := s.store.WithinTx(ctx, writeTx, func(ctx context.Context, repos Repositories) error {
		p, err := findOrCreatePetStore(ctx, repos.PetStores, data.ID)
		if err != nil {
			return err
		}

		copyPetStoreFields(&p, data)

		saved, err := repos.PetStores.Save(ctx, p)
		if err != nil {
			return errors.Annotate(err, "saving pet store")
		}

		out, err = loadPetStoreGraph(ctx, repos, saved)
		return err
	})
	if err != nil {
		return PetStoreData{}, err
	}
	return out, nil
}

// SaveEmployee crea o actualiza un empleado de la tienda petStoreID.
func (s *Service) SaveEmployee(ctx context.Context, petStoreID int64, data PetStoreEmployee) (PetStoreEmployee, error) {
	var out PetStoreEmployee
	err := s.store.WithinTx(ctx, writeTx, func(ctx context.Context, repos Repositories) error {
		p, err := findPetStoreByID(ctx, repos.PetStores, petStoreID)
		if err != nil {
			return err
		}

		e, err := findOrCreateEmployee(ctx, repos.Employees, p.ID, data.ID)
		if err != nil {
			return err
		}

		copyEmployeeFields(&e, data)
		e.PetStoreID = p.ID

		saved, err := repos.Employees.Save(ctx, e)
		if err != nil {
			return errors.Annotate(err, "saving employee")
		}

		out = newPetStoreEmployee(saved)
		return nil
	})
	if err != nil {
		return PetStoreEmployee{}, err
	}
	return out, nil
}

// SaveCustomer crea o actualiza un cliente y lo asocia a la tienda petStoreID.
func (s *Service) SaveCustomer(ctx context.Context, petStoreID int64, data PetStoreCustomer) (PetStoreCustomer, error) {
	var out PetStoreCustomer
	err := s.store.WithinTx(ctx, writeTx, func(ctx context.Context, repos Repositories) error {
		p, err := findPetStoreByID(ctx, repos.PetStores, petStoreID)
		if err != nil {
			return err
		}

		c, err := findOrCreateCustomer(ctx, repos.Customers, p.ID, data.ID)
		if err != nil {
			return err
		}

		copyCustomerFields(&c, data)

		saved, err := repos.Customers.Save(ctx, c)
		if err != nil {
			return errors.Annotate(err, "saving customer")
		}

		// El cliente necesita ID antes de poder asociarlo.
		if err := repos.Customers.AddPetStore(ctx, saved.ID, p.ID); err != nil {
			return errors.Annotate(err, "associating customer with pet store")
		}

		out = newPetStoreCustomer(saved)
		return nil
	})
	if err != nil {
		return PetStoreCustomer{}, err
	}
	return out, nil
}

// RetrieveAllPetStores devuelve sólo campos descriptivos; las colecciones
// de empleados y clientes se vacían para no serializar relaciones.
func (s *Service) RetrieveAllPetStores(ctx context.Context) ([]PetStoreData, error) {
	out := make([]PetStoreData, 0)
	err := s.store.WithinTx(ctx, readTx, func(ctx context.Context, repos Repositories) error {
		items, err := repos.PetStores.FindAll(ctx)
		if err != nil {
			return errors.Annotate(err, "listing pet stores")
		}

		for _, p := range items {
			d := descriptivePetStoreData(p)
			d.Employees = nil
			d.Customers = nil
			out = append(out, d)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RetrievePetStoreByID falla con NotFound si la tienda no existe.
func (s *Service) RetrievePetStoreByID(ctx context.Context, petStoreID int64) (PetStoreData, error) {
	var out PetStoreData
	err := s.store.WithinTx(ctx, readTx, func(ctx context.Context, repos Repositories) error {
		p, err := findPetStoreByID(ctx, repos.PetStores, petStoreID)
		if err != nil {
			return err
		}
		out = descriptivePetStoreData(p)
		return nil
	})
	if err != nil {
		return PetStoreData{}, err
	}
	return out, nil
}

func (s *Service) DeletePetStoreByID(ctx context.Context, petStoreID int64) error {
	return s.store.WithinTx(ctx, writeTx, func(ctx context.Context, repos Repositories) error {
		p, err := findPetStoreByID(ctx, repos.PetStores, petStoreID)
		if err != nil {
			return err
		}
		return errors.Annotate(repos.PetStores.Delete(ctx, p), "deleting pet store")
	})
}

// -------------------------
// find-or-create
// -------------------------

func findOrCreatePetStore(ctx context.Context, repo PetStoreRepository, id *int64) (PetStore, error) {
	if id == nil {
		return PetStore{}, nil
	}
	return findPetStoreByID(ctx, repo, *id)
}

func findPetStoreByID(ctx context.Context, repo PetStoreRepository, id int64) (PetStore, error) {
	p, err := repo.FindByID(ctx, id)
	if errors.Is(err, errors.NotFound) {
		return PetStore{}, errors.NewNotFound(nil, fmt.Sprintf("Pet store with ID= %d was not found.", id))
	}
	if err != nil {
		return PetStore{}, errors.Annotatef(err, "loading pet store %d", id)
	}
	return p, nil
}

func findOrCreateEmployee(ctx context.Context, repo EmployeeRepository, petStoreID int64, id *int64) (Employee, error) {
	if id == nil {
		return Employee{}, nil
	}

	e, err := repo.FindByID(ctx, *id)
	if errors.Is(err, errors.NotFound) {
		return Employee{}, errors.NewNotFound(nil, fmt.Sprintf("Employee with ID= %d could not be found.", *id))
	}
	if err != nil {
		return Employee{}, errors.Annotatef(err, "loading employee %d", *id)
	}

	if e.PetStoreID != petStoreID {
		return Employee{}, errors.NewNotValid(nil, fmt.Sprintf(
			"Employee with ID= %d does not belong to Pet Store with ID= %d", *id, petStoreID))
	}
	return e, nil
}

func findOrCreateCustomer(ctx context.Context, repo CustomerRepository, petStoreID int64, id *int64) (Customer, error) {
	if id == nil {
		return Customer{}, nil
	}

	c, err := repo.FindByID(ctx, *id)
	if errors.Is(err, errors.NotFound) {
		return Customer{}, errors.NewNotFound(nil, fmt.Sprintf("Customer with ID= %d could not be found.", *id))
	}
	if err != nil {
		return Customer{}, errors.Annotatef(err, "loading customer %d", *id)
	}

	storeIDs, err := repo.PetStoreIDs(ctx, c.ID)
	if err != nil {
		return Customer{}, errors.Annotatef(err, "loading pet stores of customer %d", c.ID)
	}
	for _, sid := range storeIDs {
		if sid == petStoreID {
			return c, nil
		}
	}

	return Customer{}, errors.NewNotValid(nil, fmt.Sprintf(
		"Customer with ID= %d is not associated with Pet Store with ID= %d", *id, petStoreID))
}

func loadPetStoreGraph(ctx context.Context, repos Repositories, p PetStore) (PetStoreData, error) {
	employees, err := repos.Employees.FindByPetStore(ctx, p.ID)
	if err != nil {
		return PetStoreData{}, errors.Annotatef(err, "loading employees of pet store %d", p.ID)
	}
	customers, err := repos.Customers.FindByPetStore(ctx, p.ID)
	if err != nil {
		return PetStoreData{}, errors.Annotatef(err, "loading customers of pet store %d", p.ID)
	}
	return newPetStoreData(p, employees, customers), nil
}

// -------------------------
// copy DTO -> entity
// -------------------------

func copyPetStoreFields(p *PetStore, d PetStoreData) {
	p.Name = d.Name
	p.Address = d.Address
	p.City = d.City
	p.State = d.State
	p.Zip = d.Zip
	p.Phone = d.Phone
}

func copyEmployeeFields(e *Employee, d PetStoreEmployee) {
	e.FirstName = d.FirstName
	e.LastName = d.LastName
	e.Phone = d.Phone
	e.JobTitle = d.JobTitle
}

func copyCustomerFields(c *Customer, d PetStoreCustomer) {
	c.FirstName = d.FirstName
	c.LastName = d.LastName
	c.Email = d.Email
}
