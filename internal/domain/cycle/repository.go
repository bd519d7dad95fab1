// internal/domain/cycle/repository.go
package cycle

import (
	"context"
)

// Repository defines persistence operations for period, symptom and mood
// entries. Implementations return the database package's sentinel errors
// for not-found and duplicate conditions.
type Repository interface {
	// PeriodEntry methods
	CreatePeriod(ctx context.Context, entry *PeriodEntry) error
	UpdatePeriod(ctx context.Context, entry *PeriodEntry) error
	DeletePeriod(ctx context.Context, id string) error
	GetPeriodByID(ctx context.Context, id string) (*PeriodEntry, error)
	ListPeriods(ctx context.Context) ([]PeriodEntry, error)

	// SymptomEntry methods
	CreateSymptom(ctx context.Context, entry *SymptomEntry) error
	DeleteSymptom(ctx context.Context, id string) error
	ListSymptoms(ctx context.Context) ([]SymptomEntry, error)

	// MoodEntry methods
	CreateMood(ctx context.Context, entry *MoodEntry) error
	DeleteMood(ctx context.Context, id string) error
	ListMoods(ctx context.Context) ([]MoodEntry, error)
}
