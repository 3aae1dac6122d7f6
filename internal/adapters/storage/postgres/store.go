package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/juju/errors"

	"pet-store/internal/domain/petstore"
)

// querier es lo común entre pgx.Tx y *pgxpool.Pool.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) WithinTx(ctx context.Context, opts petstore.TxOptions, fn func(ctx context.Context, repos petstore.Repositories) error) error {
	txOpts := pgx.TxOptions{}
	if opts.ReadOnly {
		txOpts.AccessMode = pgx.ReadOnly
	}

	tx, err := s.pool.BeginTx(ctx, txOpts)
	if err != nil {
		return errors.Annotate(err, "beginning transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
	}()

	if err := fn(ctx, reposFor(tx)); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			return errors.Annotatef(err, "rollback failed: %v", rbErr)
		}
		return err
	}

	return errors.Annotate(tx.Commit(ctx), "committing transaction")
}

func reposFor(q querier) petstore.Repositories {
	return petstore.Repositories{
		PetStores: &PetStoresRepo{q: q},
		Employees: &EmployeesRepo{q: q},
		Customers: &CustomersRepo{q: q},
	}
}
