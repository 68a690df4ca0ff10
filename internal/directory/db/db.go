// Package db implements the persistence layer on top of GORM. The
// Repository exposes one explicit query method per access pattern
// instead of relying on relationship traversal, and WithTransaction
// scopes a unit of work to a single commit.
package db

import (
	"context"
	"errors"
	"fmt"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/cenkalti/backoff/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Repository is the storage handle. All methods operate on the
// embedded connection, which is either the shared pool or a
// transaction started by WithTransaction.
type Repository struct {
	db *gorm.DB
}

// Config holds the Postgres connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewRepository connects to Postgres, retrying with exponential
// backoff while the database is still coming up, and migrates the
// schema.
func NewRepository(cfg *Config) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	var conn *gorm.DB
	err := backoff.Retry(func() error {
		var err error
		conn, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		return err
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return Open(conn)
}

// Open migrates the schema on an established connection and wraps it
// in a Repository. Tests use it with an in-memory SQLite connection.
func Open(conn *gorm.DB) (*Repository, error) {
	if conn.Dialector.Name() == "sqlite" {
		// SQLite ships with foreign keys off; the SET NULL and
		// CASCADE actions depend on them.
		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	err := conn.AutoMigrate(
		&models.Country{},
		&models.Region{},
		&models.City{},
		&models.User{},
		&models.Company{},
		&models.Office{},
		&models.Employee{},
		&models.Vehicle{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: conn}, nil
}

// WithTransaction runs fn against a transactional repository. Any
// error rolls the whole unit of work back, so a failed validation or
// constraint violation leaves no partial state.
func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// Exec runs a raw statement. The seed tool uses it for maintenance
// queries.
func (r *Repository) Exec(ctx context.Context, query string, params ...interface{}) error {
	result := r.db.WithContext(ctx).Exec(query, params...)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *Repository) Close() error {
	conn, err := r.db.DB()
	if err != nil {
		return err
	}
	return conn.Close()
}

// duplicateAs maps a storage-level unique-constraint violation to a
// field-scoped validation error. Application-level existence checks
// have a check-then-act race; the constraint is the authority and its
// violation must surface as a 400, not a crash.
func duplicateAs(err error, field, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return e.FieldError(field, message)
	}
	return err
}

// notFoundAs maps gorm's record-not-found to the shared sentinel.
func notFoundAs(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return e.ErrNotFound
	}
	return err
}
