package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/SscSPs/ledger_core/migrations"
)

// withMigrator opens a migrate instance, runs fn and closes it. An empty sourceURL
// selects the migrations embedded in the binary; anything else is a migrate source
// URL such as file://migrations.
func withMigrator(databaseURL, sourceURL string, fn func(m *migrate.Migrate) error) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database for migrations: %w", err)
	}
	defer migrationDB.Close()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	var m *migrate.Migrate
	if sourceURL == "" {
		source, err := iofs.New(migrations.FS, ".")
		if err != nil {
			return fmt.Errorf("could not open embedded migrations: %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", source, "postgres", driver)
		if err != nil {
			return fmt.Errorf("could not create migrate instance: %w", err)
		}
	} else {
		m, err = migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
		if err != nil {
			return fmt.Errorf("could not create migrate instance from %s: %w", sourceURL, err)
		}
	}

	runErr := fn(m)

	sourceErr, dbErr := m.Close()
	if runErr != nil {
		return runErr
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}
	return nil
}

// RunMigrations applies every pending up migration.
func RunMigrations(databaseURL, sourceURL string) error {
	return withMigrator(databaseURL, sourceURL, func(m *migrate.Migrate) error {
		err := m.Up()
		switch {
		case errors.Is(err, migrate.ErrNoChange):
			slog.Info("No new migrations to apply.")
			return nil
		case err != nil:
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		slog.Info("Database migrations applied successfully.")
		return nil
	})
}

// RollbackMigrations reverts the last steps migrations.
func RollbackMigrations(databaseURL, sourceURL string, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	return withMigrator(databaseURL, sourceURL, func(m *migrate.Migrate) error {
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to roll back migrations: %w", err)
		}
		slog.Info("Database migrations rolled back.", slog.Int("steps", steps))
		return nil
	})
}

// MigrationVersion reports the current schema version and whether it is dirty.
func MigrationVersion(databaseURL, sourceURL string) (version uint, dirty bool, err error) {
	err = withMigrator(databaseURL, sourceURL, func(m *migrate.Migrate) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			return nil
		}
		return verr
	})
	return version, dirty, err
}
