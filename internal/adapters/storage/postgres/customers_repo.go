package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/juju/errors"

	"pet-store/internal/domain/petstore"
)

type CustomersRepo struct {
	q querier
}

const customerColumns = `
	c.customer_id,
	c.customer_first_name, c.customer_last_name, c.customer_email
`

func (r *CustomersRepo) FindByID(ctx context.Context, id int64) (petstore.Customer, error) {
	row := r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customer c WHERE c.customer_id = $1`, id)

	c, err := scanCustomer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return petstore.Customer{}, errors.NotFoundf("customer %d", id)
	}
	return c, err
}

func (r *CustomersRepo) FindAll(ctx context.Context) ([]petstore.Customer, error) {
	return r.list(ctx, `SELECT `+customerColumns+` FROM customer c ORDER BY c.customer_id ASC`)
}

func (r *CustomersRepo) FindByPetStore(ctx context.Context, petStoreID int64) ([]petstore.Customer, error) {
	return r.list(ctx, `
		SELECT `+customerColumns+`
		FROM customer c
		JOIN pet_store_customer psc ON psc.customer_id = c.customer_id
		WHERE psc.pet_store_id = $1
		ORDER BY c.customer_id ASC
	`, petStoreID)
}

func (r *CustomersRepo) PetStoreIDs(ctx context.Context, customerID int64) ([]int64, error) {
	rows, err := r.q.Query(ctx, `
		SELECT pet_store_id
		FROM pet_store_customer
		WHERE customer_id = $1
		ORDER BY pet_store_id ASC
	`, customerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func (r *CustomersRepo) AddPetStore(ctx context.Context, customerID, petStoreID int64) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO pet_store_customer (pet_store_id, customer_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, petStoreID, customerID)
	return err
}

func (r *CustomersRepo) Save(ctx context.Context, c petstore.Customer) (petstore.Customer, error) {
	if c.ID == 0 {
		err := r.q.QueryRow(ctx, `
			INSERT INTO customer (
				customer_first_name, customer_last_name, customer_email
			) VALUES ($1,$2,$3)
			RETURNING customer_id
		`,
			c.FirstName,
			c.LastName,
			c.Email,
		).Scan(&c.ID)
		return c, err
	}

	tag, err := r.q.Exec(ctx, `
		UPDATE customer
		SET
			customer_first_name = $2,
			customer_last_name = $3,
			customer_email = $4
		WHERE customer_id = $1
	`,
		c.ID,
		c.FirstName,
		c.LastName,
		c.Email,
	)
	if err != nil {
		return petstore.Customer{}, err
	}
	if tag.RowsAffected() == 0 {
		return petstore.Customer{}, errors.NotFoundf("customer %d", c.ID)
	}
	return c, nil
}

func (r *CustomersRepo) Delete(ctx context.Context, c petstore.Customer) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM customer WHERE customer_id = $1`, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.NotFoundf("customer %d", c.ID)
	}
	return nil
}

func (r *CustomersRepo) list(ctx context.Context, sql string, args ...any) ([]petstore.Customer, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]petstore.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCustomer(row pgx.Row) (petstore.Customer, error) {
	var c petstore.Customer
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
	)
	return c, err
}
