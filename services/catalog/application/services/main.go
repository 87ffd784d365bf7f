package services

import (
	"context"
	"time"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/app"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/iphash"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/repositories"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/infrastructure/persistence/postgres"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/infrastructure/persistence/sqlite"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Catalog    *CatalogService
	Submission *SubmissionService
	Moderation *ModerationService
}

// New wires all catalog application services with infrastructure from the
// Application container. The repository follows the driver that opened a.Db.
func New(a *app.Application) *Services {
	cfg := a.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	var repo repositories.ItemRepository
	if a.Db.Driver() == config.DriverSQLite {
		repo = sqlite.NewItemRepository(a.Db)
	} else {
		repo = postgres.NewItemRepository(a.Db, a.EventBus)
	}

	m := newMetrics(a.Logger)
	timeout := cfg.StoreTimeout

	return &Services{
		Catalog: NewCatalogService(repo, timeout, m),
		Submission: NewSubmissionService(repo, SubmissionOptions{
			Hasher:  iphash.New(cfg.IPHashSecret),
			Limit:   cfg.SubmissionLimit,
			Window:  cfg.SubmissionWindow,
			Timeout: timeout,
			Now:     a.Now,
		}, m),
		Moderation: NewModerationService(repo, timeout, a.Now),
	}
}

// withTimeout bounds a storage call. A non-positive d leaves ctx unchanged.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
