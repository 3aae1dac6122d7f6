package memory

import (
	"context"
	"sort"

	"github.com/juju/errors"

	"pet-store/internal/domain/petstore"
)

type customerRepo struct {
	st *state
}

func (r *customerRepo) FindByID(ctx context.Context, id int64) (petstore.Customer, error) {
	c, ok := r.st.customers[id]
	if !ok {
		return petstore.Customer{}, errors.NotFoundf("customer %d", id)
	}
	return c, nil
}

func (r *customerRepo) FindAll(ctx context.Context) ([]petstore.Customer, error) {
	return r.filter(func(petstore.Customer) bool { return true }), nil
}

func (r *customerRepo) FindByPetStore(ctx context.Context, petStoreID int64) ([]petstore.Customer, error) {
	return r.filter(func(c petstore.Customer) bool {
		_, ok := r.st.links[c.ID][petStoreID]
		return ok
	}), nil
}

func (r *customerRepo) PetStoreIDs(ctx context.Context, customerID int64) ([]int64, error) {
	out := make([]int64, 0, len(r.st.links[customerID]))
	for id := range r.st.links[customerID] {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *customerRepo) AddPetStore(ctx context.Context, customerID, petStoreID int64) error {
	if _, ok := r.st.customers[customerID]; !ok {
		return errors.NotFoundf("customer %d", customerID)
	}
	if _, ok := r.st.petStores[petStoreID]; !ok {
		return errors.NotFoundf("pet store %d", petStoreID)
	}

	set, ok := r.st.links[customerID]
	if !ok {
		set = make(map[int64]struct{})
		r.st.links[customerID] = set
	}
	set[petStoreID] = struct{}{}
	return nil
}

func (r *customerRepo) Save(ctx context.Context, c petstore.Customer) (petstore.Customer, error) {
	if c.ID == 0 {
		r.st.nextCustomerID++
		c.ID = r.st.nextCustomerID
	} else if _, ok := r.st.customers[c.ID]; !ok {
		return petstore.Customer{}, errors.NotFoundf("customer %d", c.ID)
	}
	r.st.customers[c.ID] = c
	return c, nil
}

func (r *customerRepo) Delete(ctx context.Context, c petstore.Customer) error {
	if _, ok := r.st.customers[c.ID]; !ok {
		return errors.NotFoundf("customer %d", c.ID)
	}
	delete(r.st.customers, c.ID)
	delete(r.st.links, c.ID)
	return nil
}

func (r *customerRepo) filter(keep func(petstore.Customer) bool) []petstore.Customer {
	out := make([]petstore.Customer, 0)
	for _, c := range r.st.customers {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
