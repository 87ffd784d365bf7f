// Package dbtest provides an in-memory SQLite database with the catalog
// migrations applied, for tests that need a real store.
package dbtest

import (
	"context"
	"testing"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/migrations/catalog"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/database"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/logger"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/migrator"
)

// NewSQLite creates a fresh in-memory SQLite database with the schema applied.
func NewSQLite(t *testing.T) *database.Database {
	t.Helper()

	log := logger.New(&config.Config{LogLevel: "error"})
	db, err := database.OpenSQLite(context.Background(), ":memory:", log)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	migrator.Quiet()
	if err := migrator.RunMigrations(db.DB(), config.DriverSQLite, catalog.FS, catalog.Dir(config.DriverSQLite)); err != nil {
		db.Close()
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(db.Close)

	return db
}
