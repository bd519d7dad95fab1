// internal/infra/database/postgres_cycle_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cycle_tracker_bot/internal/domain/cycle"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Custom errors
var ErrPeriodNotFound = fmt.Errorf("period entry not found")
var ErrSymptomNotFound = fmt.Errorf("symptom entry not found")
var ErrMoodNotFound = fmt.Errorf("mood entry not found")
var ErrDuplicateEntry = fmt.Errorf("entry with this ID already exists")

type PostgresCycleRepository struct {
	db *sql.DB
}

func NewPostgresCycleRepository(db *sql.DB) *PostgresCycleRepository {
	return &PostgresCycleRepository{db: db}
}

// --- PeriodEntry methods ---

func (r *PostgresCycleRepository) CreatePeriod(ctx context.Context, entry *cycle.PeriodEntry) error {
	query := `INSERT INTO period_entries (id, start_date, end_date, notes)
               VALUES ($1, $2, $3, $4)
               RETURNING created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, entry.ID, entry.StartDate, entry.EndDate, entry.Notes).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "period_entries_pkey") {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("error creating period entry: %w", err)
	}
	return nil
}

func (r *PostgresCycleRepository) UpdatePeriod(ctx context.Context, entry *cycle.PeriodEntry) error {
	query := `UPDATE period_entries
               SET start_date = $1, end_date = $2, notes = $3, updated_at = NOW()
               WHERE id = $4
               RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query, entry.StartDate, entry.EndDate, entry.Notes, entry.ID).Scan(&entry.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrPeriodNotFound
		}
		return fmt.Errorf("error updating period entry: %w", err)
	}
	return nil
}

func (r *PostgresCycleRepository) DeletePeriod(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM period_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting period entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted period entry: %w", err)
	}
	if affected == 0 {
		return ErrPeriodNotFound
	}
	return nil
}

func (r *PostgresCycleRepository) GetPeriodByID(ctx context.Context, id string) (*cycle.PeriodEntry, error) {
	query := `SELECT id, start_date, end_date, notes, created_at, updated_at
               FROM period_entries WHERE id = $1`
	entry := &cycle.PeriodEntry{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&entry.ID, &entry.StartDate, &entry.EndDate, &entry.Notes, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPeriodNotFound
		}
		return nil, fmt.Errorf("error getting period entry by ID: %w", err)
	}
	return entry, nil
}

func (r *PostgresCycleRepository) ListPeriods(ctx context.Context) ([]cycle.PeriodEntry, error) {
	query := `SELECT id, start_date, end_date, notes, created_at, updated_at
               FROM period_entries ORDER BY start_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing period entries: %w", err)
	}
	defer rows.Close()

	entries := make([]cycle.PeriodEntry, 0)
	for rows.Next() {
		var entry cycle.PeriodEntry
		if err := rows.Scan(&entry.ID, &entry.StartDate, &entry.EndDate, &entry.Notes, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning period entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period entries: %w", err)
	}
	return entries, nil
}

// --- SymptomEntry methods ---

func (r *PostgresCycleRepository) CreateSymptom(ctx context.Context, entry *cycle.SymptomEntry) error {
	query := `INSERT INTO symptom_entries (id, entry_date, symptom_type, severity, notes)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, entry.ID, entry.Date, entry.Type, entry.Severity, entry.Notes).Scan(&entry.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "symptom_entries_pkey") {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("error creating symptom entry: %w", err)
	}
	return nil
}

func (r *PostgresCycleRepository) DeleteSymptom(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM symptom_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting symptom entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted symptom entry: %w", err)
	}
	if affected == 0 {
		return ErrSymptomNotFound
	}
	return nil
}

func (r *PostgresCycleRepository) ListSymptoms(ctx context.Context) ([]cycle.SymptomEntry, error) {
	query := `SELECT id, entry_date, symptom_type, severity, notes, created_at
               FROM symptom_entries ORDER BY entry_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing symptom entries: %w", err)
	}
	defer rows.Close()

	entries := make([]cycle.SymptomEntry, 0)
	for rows.Next() {
		var entry cycle.SymptomEntry
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Type, &entry.Severity, &entry.Notes, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning symptom entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating symptom entries: %w", err)
	}
	return entries, nil
}

// --- MoodEntry methods ---

func (r *PostgresCycleRepository) CreateMood(ctx context.Context, entry *cycle.MoodEntry) error {
	query := `INSERT INTO mood_entries (id, entry_date, mood, notes)
               VALUES ($1, $2, $3, $4)
               RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, entry.ID, entry.Date, entry.Mood, entry.Notes).Scan(&entry.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "mood_entries_pkey") {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("error creating mood entry: %w", err)
	}
	return nil
}

func (r *PostgresCycleRepository) DeleteMood(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mood_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting mood entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking deleted mood entry: %w", err)
	}
	if affected == 0 {
		return ErrMoodNotFound
	}
	return nil
}

func (r *PostgresCycleRepository) ListMoods(ctx context.Context) ([]cycle.MoodEntry, error) {
	query := `SELECT id, entry_date, mood, notes, created_at
               FROM mood_entries ORDER BY entry_date DESC, created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing mood entries: %w", err)
	}
	defer rows.Close()

	entries := make([]cycle.MoodEntry, 0)
	for rows.Next() {
		var entry cycle.MoodEntry
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Mood, &entry.Notes, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning mood entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mood entries: %w", err)
	}
	return entries, nil
}
