package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/logger"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
)

const meterName = "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog"

// Submission outcomes recorded on catalog.submissions.
const (
	outcomeAccepted    = "accepted"
	outcomeInvalid     = "invalid"
	outcomeRateLimited = "rate_limited"
	outcomeDuplicate   = "duplicate"
	outcomeError       = "error"
)

type metrics struct {
	choices     metric.Int64Counter
	submissions metric.Int64Counter
}

// newMetrics registers the catalog instruments on the global meter provider.
// Instrument errors fall back to no-op counters so metrics never block a request.
func newMetrics(log logger.Logger) *metrics {
	meter := otel.Meter(meterName)

	choices, err := meter.Int64Counter("catalog.choices",
		metric.WithDescription("Daily choices served, by result type"))
	if err != nil && log != nil {
		log.Warn("catalog.choices counter unavailable", "error", err)
	}
	submissions, err := meter.Int64Counter("catalog.submissions",
		metric.WithDescription("Public submissions, by outcome"))
	if err != nil && log != nil {
		log.Warn("catalog.submissions counter unavailable", "error", err)
	}
	return &metrics{choices: choices, submissions: submissions}
}

func (m *metrics) recordChoice(ctx context.Context, c models.Choice) {
	if m == nil || m.choices == nil {
		return
	}
	m.choices.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", string(c.Type)),
		attribute.Bool("empty", c.Empty()),
	))
}

func (m *metrics) recordSubmission(ctx context.Context, outcome string) {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
