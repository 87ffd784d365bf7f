package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/getsentry/sentry-go"
	"go.opentelemetry.io/otel"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:    "test-service",
		ServiceVersion: "test",
		Environment:    "testing",
		OtelEndpoint:   "", // disabled
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected non-nil shutdown")
	}
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_MetricsHandlerServesPrometheusFormat(t *testing.T) {
	_, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	ct := rr.Header().Get("Content-Type")
	if !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
}

func TestSetup_InstallsTraceContextPropagator(t *testing.T) {
	shutdown, _, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	fields := otel.GetTextMapPropagator().Fields()
	if !slices.Contains(fields, "traceparent") {
		t.Fatalf("expected traceparent in propagator fields, got %v", fields)
	}
}

func TestScrubClientAddress(t *testing.T) {
	event := &sentry.Event{
		User: sentry.User{IPAddress: "203.0.113.7"},
		Request: &sentry.Request{
			Headers: map[string]string{"X-Forwarded-For": "203.0.113.7", "Accept": "application/json"},
			Env:     map[string]string{"REMOTE_ADDR": "203.0.113.7", "REMOTE_PORT": "5555"},
		},
	}
	got := scrubClientAddress(event, nil)

	if got.User.IPAddress != "" {
		t.Errorf("user ip not scrubbed: %q", got.User.IPAddress)
	}
	if _, ok := got.Request.Headers["X-Forwarded-For"]; ok {
		t.Error("X-Forwarded-For not scrubbed")
	}
	if got.Request.Headers["Accept"] != "application/json" {
		t.Error("unrelated header removed")
	}
	if len(got.Request.Env) != 0 {
		t.Errorf("remote address env not scrubbed: %v", got.Request.Env)
	}
}

func TestDBSystem(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{config.DriverSQLite, "sqlite"},
		{config.DriverPostgres, "postgresql"},
		{"", "postgresql"},
	}
	for _, tt := range tests {
		if got := dbSystem(tt.driver); got != tt.want {
			t.Errorf("dbSystem(%q) = %q, want %q", tt.driver, got, tt.want)
		}
	}
}
