// Package main provides hardctl, the moderation CLI for the catalog.
//
// hardctl talks to the configured store directly. It is the only way a
// pending submission becomes visible to the public API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/app"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/database"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/logger"
	appsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/application/services"
)

func main() {
	root := newRootCmd(openModeration)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openModeration connects to the store named by the environment.
// The returned close func releases the connection.
func openModeration(ctx context.Context) (*appsvcs.ModerationService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.NewWithWriter(os.Stderr, cfg.LogLevel)

	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	// No event bus: moderation commands never publish.
	svcs := appsvcs.New(&app.Application{Config: cfg, Db: db, Logger: log})
	return svcs.Moderation, db.Close, nil
}
