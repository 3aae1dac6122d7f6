package config

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.port", envKey("PETSTORE_SERVER_PORT"))
	assert.Equal(t, "database.max_open_conns", envKey("PETSTORE_DATABASE_MAX_OPEN_CONNS"))
	assert.Equal(t, "app.name", envKey("PETSTORE_APP_NAME"))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, "pet-store", cfg.App.Name)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PETSTORE_SERVER_PORT", "9090")
	t.Setenv("PETSTORE_SERVER_READ_TIMEOUT", "7")
	t.Setenv("PETSTORE_LOG_FORMAT", "json")
	t.Setenv("PETSTORE_DATABASE_DRIVER", "Postgres")
	t.Setenv("PETSTORE_DATABASE_DSN", "postgres://u:p@localhost:5432/petstore")
	t.Setenv("PETSTORE_DATABASE_MAX_OPEN_CONNS", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 7, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout, "default kept")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("UnknownDriver", func(t *testing.T) {
		t.Setenv("PETSTORE_DATABASE_DRIVER", "oracle")

		_, err := Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.NotValid))
	})

	t.Run("PostgresWithoutDSN", func(t *testing.T) {
		t.Setenv("PETSTORE_DATABASE_DRIVER", "postgres")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		t.Setenv("PETSTORE_LOG_LEVEL", "verbose")

		_, err := Load()
		require.Error(t, err)
	})
}
