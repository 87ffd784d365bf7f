package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/migrations/catalog"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/database"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/logger"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	db, err := database.Open(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrator.RunMigrations(db.DB(), db.Driver(), catalog.FS, catalog.Dir(db.Driver())); err != nil {
		log.Error("migrations failed", "driver", db.Driver(), "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("migrations applied", "driver", db.Driver())
}
