package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"soilgate/internal/common"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateOpts configures MigrateMysql, a zero `Steps` applies every
// pending migration
type MigrateOpts struct {
	Connection  *sql.DB
	Steps       int
	ServiceLogs chan<- common.ServiceLog
}

func MigrateMysql(opts MigrateOpts) error {
	if opts.Connection == nil {
		return fmt.Errorf("failed to receive a mysql connection")
	}
	if opts.ServiceLogs == nil {
		opts.ServiceLogs = common.GetNoopServiceLog()
	}
	driver, err := mysql.WithInstance(opts.Connection, &mysql.Config{})
	if err != nil {
		return fmt.Errorf("failed to create mysql driver: %w", err)
	}
	opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "established database connection")

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create iofs source: %w", err)
	}
	opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "created migrations model")

	migrator, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator instance: %w", err)
	}
	opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "created migrator instance")

	version, isDirty, err := migrator.Version()
	if err != nil {
		if !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("failed to get version of current migration: %w", err)
		}
	}
	if isDirty {
		return fmt.Errorf("failed to get a clean slate to run migrations on (current dirty version: %v)", version)
	}
	opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "migrator version: %v (dirty: %v)", version, isDirty)
	if opts.Steps != 0 {
		opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "running %v steps of migrations", opts.Steps)
		if err := migrator.Steps(opts.Steps); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "no change detected")
				return nil
			}
			return fmt.Errorf("failed to migrate %v steps: %w", opts.Steps, err)
		}
	} else {
		opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "running all pending migrations")
		if err := migrator.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "no change detected")
				return nil
			}
			return fmt.Errorf("failed to migrate: %w", err)
		}
	}
	opts.ServiceLogs <- common.ServiceLogf(common.LogLevelInfo, "migrations applied")
	return nil
}

// ListMigrations returns the names of the embedded migration files,
// used by `run migrations --dry-run`
func ListMigrations() ([]string, error) {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	output := []string{}
	for _, entry := range entries {
		output = append(output, entry.Name())
	}
	return output, nil
}
