package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/events"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/logger"
	catalogEvents "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/events"
)

func TestHandleItemSubmitted_LogsPendingItem(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info")

	evt := catalogEvents.ItemSubmittedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     42,
		Name:       "Wake at five",
		Category:   "Discipline",
		Weight:     1,
		OccurredAt: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
	msg, err := events.NewJSONMessage(evt.EventID.String(), evt.Version, evt)
	if err != nil {
		t.Fatalf("NewJSONMessage: %v", err)
	}

	if err := handleItemSubmitted(log)(context.Background(), msg); err != nil {
		t.Fatalf("handler: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "item awaiting moderation") || !strings.Contains(out, `"item_id":42`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestHandleItemSubmitted_RejectsGarbage(t *testing.T) {
	var buf bytes.Buffer
	msg := message.NewMessage("id", []byte("not json"))
	if err := handleItemSubmitted(logger.NewWithWriter(&buf, "info"))(context.Background(), msg); err == nil {
		t.Fatal("expected decode error so the bus retries and reports it")
	}
}
