package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/juju/errors"

	"pet-store/internal/domain/petstore"
)

type PetStoresRepo struct {
	q querier
}

const petStoreColumns = `
	pet_store_id,
	pet_store_name, pet_store_address, pet_store_city,
	pet_store_state, pet_store_zip, pet_store_phone
`

func (r *PetStoresRepo) FindByID(ctx context.Context, id int64) (petstore.PetStore, error) {
	row := r.q.QueryRow(ctx, `SELECT `+petStoreColumns+` FROM pet_store WHERE pet_store_id = $1`, id)

	p, err := scanPetStore(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return petstore.PetStore{}, errors.NotFoundf("pet store %d", id)
	}
	return p, err
}

func (r *PetStoresRepo) FindAll(ctx context.Context) ([]petstore.PetStore, error) {
	rows, err := r.q.Query(ctx, `SELECT `+petStoreColumns+` FROM pet_store ORDER BY pet_store_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]petstore.PetStore, 0)
	for rows.Next() {
		p, err := scanPetStore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetStoresRepo) Save(ctx context.Context, p petstore.PetStore) (petstore.PetStore, error) {
	if p.ID == 0 {
		err := r.q.QueryRow(ctx, `
			INSERT INTO pet_store (
				pet_store_name, pet_store_address, pet_store_city,
				pet_store_state, pet_store_zip, pet_store_phone
			) VALUES ($1,$2,$3,$4,$5,$6)
			RETURNING pet_store_id
		`,
			p.Name,
			p.Address,
			p.City,
			p.State,
			p.Zip,
			p.Phone,
		).Scan(&p.ID)
		return p, err
	}

	tag, err := r.q.Exec(ctx, `
		UPDATE pet_store
		SET
			pet_store_name = $2,
			pet_store_address = $3,
			pet_store_city = $4,
			pet_store_state = $5,
			pet_store_zip = $6,
			pet_store_phone = $7
		WHERE pet_store_id = $1
	`,
		p.ID,
		p.Name,
		p.Address,
		p.City,
		p.State,
		p.Zip,
		p.Phone,
	)
	if err != nil {
		return petstore.PetStore{}, err
	}
	if tag.RowsAffected() == 0 {
		return petstore.PetStore{}, errors.NotFoundf("pet store %d", p.ID)
	}
	return p, nil
}

// Delete: employee y pet_store_customer caen por ON DELETE CASCADE.
func (r *PetStoresRepo) Delete(ctx context.Context, p petstore.PetStore) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM pet_store WHERE pet_store_id = $1`, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.NotFoundf("pet store %d", p.ID)
	}
	return nil
}

func scanPetStore(row pgx.Row) (petstore.PetStore, error) {
	var p petstore.PetStore
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Address,
		&p.City,
		&p.State,
		&p.Zip,
		&p.Phone,
	)
	return p, err
}
