package postgres

import (
	"context"
	"embed"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/juju/errors"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate aplica las migraciones embebidas (versión en schema_version).
func Migrate(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return errors.Annotate(err, "acquiring connection for migrations")
	}
	defer conn.Release()

	m, err := tern.NewMigrator(ctx, conn.Conn(), "schema_version")
	if err != nil {
		return errors.Annotate(err, "constructing database migrator")
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return errors.Annotate(err, "retrieving database migrations subtree")
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return errors.Annotate(err, "loading database migrations")
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return errors.Annotate(err, "retrieving current database migration version")
	}

	if err := m.Migrate(ctx); err != nil {
		return errors.Annotate(err, "migrating database")
	}

	if from == int32(len(m.Migrations)) {
		log.Info().Int("version", len(m.Migrations)).Msg("database schema up to date")
	} else {
		log.Info().Int32("from", from).Int("to", len(m.Migrations)).Msg("migrated database schema")
	}
	return nil
}
