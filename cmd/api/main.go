package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/juju/errors"
	"github.com/rs/zerolog"

	"pet-store/internal/adapters/storage/memory"
	"pet-store/internal/adapters/storage/postgres"
	"pet-store/internal/adapters/storage/sqlite"
	"pet-store/internal/config"
	"pet-store/internal/domain/petstore"
	"pet-store/internal/platform/logger"
	"pet-store/internal/router"
)

// @title        Pet Store API
// @version      1.0
// @description  CRUD API for pet stores, their employees and their customers.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// todavía no hay logger configurado
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("loading config")
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("opening store")
	}
	defer closeStore()

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      router.NewRouter(router.Options{Store: store, Logger: &log}),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.Database.Driver).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStore devuelve el adapter según el driver y una función para liberarlo.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (petstore.Store, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.Open(ctx, cfg.DSN, postgres.Options{
			MaxConns: int32(cfg.MaxOpenConns),
			TraceSQL: cfg.TraceSQL,
			Logger:   log,
		})
		if err != nil {
			return nil, nil, err
		}
		if cfg.Migrate {
			if err := postgres.Migrate(ctx, pool, log); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return postgres.NewStore(pool), pool.Close, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.DSN, log)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return sqlite.NewStore(db), closeFn, nil

	default:
		log.Warn().Msg("using in-memory store, data is lost on restart")
		return memory.NewStore(), func() {}, nil
	}
}
