package memory

import (
	"context"
	"sort"

	"github.com/juju/errors"

	"pet-store/internal/domain/petstore"
)

type employeeRepo struct {
	st *state
}

func (r *employeeRepo) FindByID(ctx context.Context, id int64) (petstore.Employee, error) {
	e, ok := r.st.employees[id]
	if !ok {
		return petstore.Employee{}, errors.NotFoundf("employee %d", id)
	}
	return e, nil
}

func (r *employeeRepo) FindAll(ctx context.Context) ([]petstore.Employee, error) {
	return r.filter(func(petstore.Employee) bool { return true }), nil
}

func (r *employeeRepo) FindByPetStore(ctx context.Context, petStoreID int64) ([]petstore.Employee, error) {
	return r.filter(func(e petstore.Employee) bool { return e.PetStoreID == petStoreID }), nil
}

func (r *employeeRepo) Save(ctx context.Context, e petstore.Employee) (petstore.Employee, error) {
	if _, ok := r.st.petStores[e.PetStoreID]; !ok {
		return petstore.Employee{}, errors.NotValidf("pet store reference %d", e.PetStoreID)
	}
	if e.ID == 0 {
		r.st.nextEmployeeID++
		e.ID = r.st.nextEmployeeID
	} else if _, ok := r.st.employees[e.ID]; !ok {
		return petstore.Employee{}, errors.NotFoundf("employee %d", e.ID)
	}
	r.st.employees[e.ID] = e
	return e, nil
}

func (r *employeeRepo) Delete(ctx context.Context, e petstore.Employee) error {
	if _, ok := r.st.employees[e.ID]; !ok {
		return errors.NotFoundf("employee %d", e.ID)
	}
	delete(r.st.employees, e.ID)
	return nil
}

func (r *employeeRepo) filter(keep func(petstore.Employee) bool) []petstore.Employee {
	out := make([]petstore.Employee, 0)
	for _, e := range r.st.employees {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
