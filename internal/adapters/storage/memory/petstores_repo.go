package memory

import (
	"context"
	"sort"

	"github.com/juju/errors"

	"pet-store/internal/domain/petstore"
)

type petStoreRepo struct {
	st *state
}

func (r *petStoreRepo) FindByID(ctx context.Context, id int64) (petstore.PetStore, error) {
	p, ok := r.st.petStores[id]
	if !ok {
		return petstore.PetStore{}, errors.NotFoundf("pet store %d", id)
	}
	return p, nil
}

func (r *petStoreRepo) FindAll(ctx context.Context) ([]petstore.PetStore, error) {
	out := make([]petstore.PetStore, 0, len(r.st.petStores))
	for _, p := range r.st.petStores {
		out = append(out, p)
	}
	// Orden estable por id (igual que ORDER BY en postgres)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *petStoreRepo) Save(ctx context.Context, p petstore.PetStore) (petstore.PetStore, error) {
	if p.ID == 0 {
		r.st.nextPetStoreID++
		p.ID = r.st.nextPetStoreID
	} else if _, ok := r.st.petStores[p.ID]; !ok {
		return petstore.PetStore{}, errors.NotFoundf("pet store %d", p.ID)
	}
	r.st.petStores[p.ID] = p
	return p, nil
}

// Delete replica el ON DELETE CASCADE: empleados y asociaciones se van con la tienda.
func (r *petStoreRepo) Delete(ctx context.Context, p petstore.PetStore) error {
	if _, ok := r.st.petStores[p.ID]; !ok {
		return errors.NotFoundf("pet store %d", p.ID)
	}
	delete(r.st.petStores, p.ID)

	for id, e := range r.st.employees {
		if e.PetStoreID == p.ID {
			delete(r.st.employees, id)
		}
	}
	for _, set := range r.st.links {
		delete(set, p.ID)
	}
	return nil
}
