package postgres

import (
	"context"
	"database/sql"
	"embed"

	"storefront/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsDir = "migrations"

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	if err := configureGoose(); err != nil {
		return err
	}

	if err := gooseUpContext(ctx, db, migrationsDir); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	if err := configureGoose(); err != nil {
		return err
	}

	return errors.Wrap(goose.DownContext(ctx, db, migrationsDir), "roll back migration")
}

// MigrationStatus logs the applied state of each migration through goose's logger.
func MigrationStatus(ctx context.Context, db *sql.DB) error {
	if err := configureGoose(); err != nil {
		return err
	}

	return errors.Wrap(goose.StatusContext(ctx, db, migrationsDir), "migration status")
}

func configureGoose() error {
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	return nil
}
