package models

import "time"

// Submission is the audit record written alongside every public submission.
// It exists only to compute the rolling rate limit and is never exposed.
type Submission struct {
	ID            int64
	ItemID        int64
	CreatedIPHash string // keyed hash, never the raw IP; empty when unknown
	CreatedAt     time.Time
}
