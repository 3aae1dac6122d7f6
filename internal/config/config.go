// Package config carga la configuración desde variables de entorno
// (prefijo PETSTORE_, .env opcional) y la valida al arrancar.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Carga .env (si existe) antes de leer el entorno.
	_ "github.com/joho/godotenv/autoload"
	"github.com/juju/errors"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PETSTORE_"

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig      `koanf:"app" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Log      LogConfig      `koanf:"log" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

type AppConfig struct {
	Name string `koanf:"name" validate:"required"`
}

// ServerConfig: timeouts en segundos.
type ServerConfig struct {
	Port         int `koanf:"port" validate:"required,min=1,max=65535"`
	ReadTimeout  int `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout int `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout  int `koanf:"idle_timeout" validate:"min=1"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

type DatabaseConfig struct {
	Driver string `koanf:"driver" validate:"required,oneof=memory postgres sqlite"`
	// DSN: URL postgres o path del archivo sqlite. Ignorado en memory.
	DSN          string `koanf:"dsn" validate:"required_unless=Driver memory"`
	MaxOpenConns int    `koanf:"max_open_conns" validate:"min=1"`
	Migrate      bool   `koanf:"migrate"`
	TraceSQL     bool   `koanf:"trace_sql"`
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func (s ServerConfig) IdleTimeoutDuration() time.Duration {
	return time.Duration(s.IdleTimeout) * time.Second
}

func Default() Config {
	return Config{
		App: AppConfig{Name: "pet-store"},
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  5,
			WriteTimeout: 10,
			IdleTimeout:  60,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Database: DatabaseConfig{
			Driver:       DriverMemory,
			MaxOpenConns: 10,
			Migrate:      true,
		},
	}
}

// Load lee PETSTORE_* sobre los defaults y valida el resultado.
// PETSTORE_SERVER_READ_TIMEOUT -> server.read_timeout
func Load() (Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", envKey), nil)
	if err != nil {
		return Config{}, errors.Annotate(err, "loading env config")
	}

	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (Config, error) {
	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Annotate(err, "unmarshalling config")
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, errors.NewNotValid(err, "invalid config")
	}
	return cfg, nil
}

// envKey quita el prefijo y separa sección/campo en el primer "_".
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(key, "_", ".", 1)
}
