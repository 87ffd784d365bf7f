package migrator

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
)

// RunMigrations runs all pending goose migrations found under dir in files.
// driver selects the goose dialect (config.DriverPostgres or config.DriverSQLite).
func RunMigrations(db *sql.DB, driver string, files fs.FS, dir string) error {
	dialect := "postgres"
	if driver == config.DriverSQLite {
		dialect = "sqlite3"
	}

	goose.SetBaseFS(files)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	return nil
}

// Quiet silences goose's progress output (used by tests and the CLI).
func Quiet() {
	goose.SetLogger(goose.NopLogger())
}
