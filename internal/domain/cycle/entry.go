// internal/domain/cycle/entry.go
package cycle

import (
	"database/sql"
	"time"
)

// PeriodEntry is a single logged period. Dates are calendar dates
// (midnight UTC, no meaningful time component).
// Corresponds to the 'period_entries' table.
type PeriodEntry struct {
	ID        string // UUID
	StartDate time.Time
	EndDate   time.Time
	Notes     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SymptomSeverity grades a logged symptom.
type SymptomSeverity string

const (
	SeverityMild     SymptomSeverity = "mild"
	SeverityModerate SymptomSeverity = "moderate"
	SeveritySevere   SymptomSeverity = "severe"
)

// SymptomEntry is a single logged symptom. Not consumed by the
// prediction math, only surfaced back to the user.
// Corresponds to the 'symptom_entries' table.
type SymptomEntry struct {
	ID        string
	Date      time.Time
	Type      string
	Severity  SymptomSeverity
	Notes     sql.NullString
	CreatedAt time.Time
}

// MoodEntry is a single logged mood.
// Corresponds to the 'mood_entries' table.
type MoodEntry struct {
	ID        string
	Date      time.Time
	Mood      string
	Notes     sql.NullString
	CreatedAt time.Time
}
