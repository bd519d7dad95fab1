// internal/domain/activity/log.go
package activity

import (
	"context"
	"time"
)

// Entry is one row of the user-visible activity log.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}

// Sink records activity entries. Recording is best-effort: implementations
// swallow and log their own failures, and callers never treat a record as
// a blocking operation.
type Sink interface {
	Record(ctx context.Context, action, details string)
}

// NopSink discards all entries. Useful in tests and as a safe default.
type NopSink struct{}

func (NopSink) Record(context.Context, string, string) {}
