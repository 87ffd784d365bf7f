package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicItemSubmitted is the Watermill topic published when a public submission
// creates a pending item.
const TopicItemSubmitted = "catalog.item.submitted"

// ItemSubmittedEvent is published in the same transaction as the pending item.
// It carries no client identifier, hashed or raw.
type ItemSubmittedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	IsHalf     bool      `json:"is_half"`
	Weight     float64   `json:"weight"`
	OccurredAt time.Time `json:"occurred_at"`
}
