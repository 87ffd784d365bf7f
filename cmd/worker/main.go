package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/app"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/database"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/events"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/logger"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/telemetry"
	catalogEvents "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	if cfg.StorageDriver != config.DriverPostgres {
		log.Error("worker requires STORAGE_DRIVER=postgres; the outbox lives in Postgres", "driver", cfg.StorageDriver)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	db, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer db.Close()

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Config:   cfg,
		Db:       db,
		Logger:   log,
		EventBus: eventBus,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, catalogEvents.TopicItemSubmitted, handleItemSubmitted(a.Logger))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", catalogEvents.TopicItemSubmitted,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{catalogEvents.TopicItemSubmitted})
	return nil
}

// handleItemSubmitted returns a handler for catalog.item.submitted events.
// It surfaces each new pending item to moderators, who review it with
// `hardctl pending` and `hardctl approve <id>`. Logging is idempotent, so
// redelivery is harmless.
func handleItemSubmitted(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		evt, err := events.DecodeJSON[catalogEvents.ItemSubmittedEvent](msg)
		if err != nil {
			return err
		}

		log.InfoContext(ctx, "item awaiting moderation",
			"event_id", evt.EventID,
			"item_id", evt.ItemID,
			"name", evt.Name,
			"category", evt.Category,
			"is_half", evt.IsHalf,
			"weight", evt.Weight,
			"submitted_at", evt.OccurredAt,
		)
		return nil
	}
}
