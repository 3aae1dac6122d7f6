package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/juju/errors"

	"pet-store/internal/domain/petstore"
)

type EmployeesRepo struct {
	q querier
}

const employeeColumns = `
	employee_id, pet_store_id,
	employee_first_name, employee_last_name,
	employee_phone, employee_job_title
`

func (r *EmployeesRepo) FindByID(ctx context.Context, id int64) (petstore.Employee, error) {
	row := r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employee WHERE employee_id = $1`, id)

	e, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return petstore.Employee{}, errors.NotFoundf("employee %d", id)
	}
	return e, err
}

func (r *EmployeesRepo) FindAll(ctx context.Context) ([]petstore.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+` FROM employee ORDER BY employee_id ASC`)
}

func (r *EmployeesRepo) FindByPetStore(ctx context.Context, petStoreID int64) ([]petstore.Employee, error) {
	return r.list(ctx, `
		SELECT `+employeeColumns+`
		FROM employee
		WHERE pet_store_id = $1
		ORDER BY employee_id ASC
	`, petStoreID)
}

func (r *EmployeesRepo) Save(ctx context.Context, e petstore.Employee) (petstore.Employee, error) {
	if e.ID == 0 {
		err := r.q.QueryRow(ctx, `
			INSERT INTO employee (
				pet_store_id,
				employee_first_name, employee_last_name,
				employee_phone, employee_job_title
			) VALUES ($1,$2,$3,$4,$5)
			RETURNING employee_id
		`,
			e.PetStoreID,
			e.FirstName,
			e.LastName,
			e.Phone,
			e.JobTitle,
		).Scan(&e.ID)
		return e, err
	}

	tag, err := r.q.Exec(ctx, `
		UPDATE employee
		SET
			pet_store_id = $2,
			employee_first_name = $3,
			employee_last_name = $4,
			employee_phone = $5,
			employee_job_title = $6
		WHERE employee_id = $1
	`,
		e.ID,
		e.PetStoreID,
		e.FirstName,
		e.LastName,
		e.Phone,
		e.JobTitle,
	)
	if err != nil {
		return petstore.Employee{}, err
	}
	if tag.RowsAffected() == 0 {
		return petstore.Employee{}, errors.NotFoundf("employee %d", e.ID)
	}
	return e, nil
}

func (r *EmployeesRepo) Delete(ctx context.Context, e petstore.Employee) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM employee WHERE employee_id = $1`, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.NotFoundf("employee %d", e.ID)
	}
	return nil
}

func (r *EmployeesRepo) list(ctx context.Context, sql string, args ...any) ([]petstore.Employee, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]petstore.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEmployee(row pgx.Row) (petstore.Employee, error) {
	var e petstore.Employee
	err := row.Scan(
		&e.ID,
		&e.PetStoreID,
		&e.FirstName,
		&e.LastName,
		&e.Phone,
		&e.JobTitle,
	)
	return e, err
}
