package postgres

import (
	"context"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/juju/errors"
	"github.com/rs/zerolog"
)

type Options struct {
	MaxConns int32
	// TraceSQL loguea cada query a nivel debug (ruidoso, sólo dev).
	TraceSQL bool
	Logger   zerolog.Logger
}

// Open crea un pool pgx y verifica la conexión con un ping.
func Open(ctx context.Context, dsn string, opts Options) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Annotate(err, "parsing postgres dsn")
	}

	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	if opts.TraceSQL {
		cfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(opts.Logger),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Annotate(err, "creating pgx pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Annotate(err, "pinging postgres")
	}

	return pool, nil
}
