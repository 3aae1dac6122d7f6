package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/rs/zerolog"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"pet-store/internal/domain/petstore"
)

// Open abre (o crea) la base sqlite en path y aplica AutoMigrate.
func Open(path string, log zerolog.Logger) (*gorm.DB, error) {
	dsn := strings.TrimSpace(path)
	if dsn == "" {
		return nil, errors.NotValidf("empty sqlite path")
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_foreign_keys=1&_busy_timeout=5000"

	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(&log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Annotate(err, "opening sqlite")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Annotate(err, "sqlite handle")
	}
	// sqlite admite un solo writer; con una conexión evitamos SQLITE_BUSY.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&petStoreModel{},
		&employeeModel{},
		&customerModel{},
		&petStoreCustomerModel{},
	); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Annotate(err, "migrating sqlite schema")
	}

	return db, nil
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithinTx usa db.Transaction: rollback ante error o panic, commit si no.
// sqlite no tiene transacciones read-only; opts.ReadOnly se ignora.
func (s *Store) WithinTx(ctx context.Context, opts petstore.TxOptions, fn func(ctx context.Context, repos petstore.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, petstore.Repositories{
			PetStores: &petStoreRepo{db: tx},
			Employees: &employeeRepo{db: tx},
			Customers: &customerRepo{db: tx},
		})
	})
}
