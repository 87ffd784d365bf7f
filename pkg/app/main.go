package app

import (
	"time"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/database"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/events"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass it to each service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "item submitted", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus // nil when running on SQLite
	Clock    func() time.Time // nil means time.Now
}

// Now returns the current time from the configured clock.
func (a *Application) Now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock()
}
