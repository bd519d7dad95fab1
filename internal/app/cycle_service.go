// internal/app/cycle_service.go
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cycle_tracker_bot/internal/domain/activity"
	"cycle_tracker_bot/internal/domain/cycle"
	"cycle_tracker_bot/internal/domain/prediction"
	"cycle_tracker_bot/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInvalidDateRange is returned when a period entry would end before it
// starts. The prediction math does not enforce this itself, so the entry
// points that accept raw user input do.
var ErrInvalidDateRange = fmt.Errorf("period end date is before its start date")

// Forecast is the derived cycle outlook. Recomputed on demand, never
// persisted.
type Forecast struct {
	NextPeriod    time.Time
	HasPrediction bool
	Window        prediction.Window
}

// CycleService is the write path for period, symptom and mood entries and
// the read path for forecasts. Logging a period re-plans the reminder
// batteries from the fresh forecast.
type CycleService struct {
	repo      cycle.Repository
	prefs     *storage.PreferencesStore
	reminders *ReminderService
	activity  activity.Sink
	logger    *logrus.Logger
}

func NewCycleService(
	repo cycle.Repository,
	prefs *storage.PreferencesStore,
	reminders *ReminderService,
	sink activity.Sink,
	logger *logrus.Logger,
) *CycleService {
	return &CycleService{
		repo:      repo,
		prefs:     prefs,
		reminders: reminders,
		activity:  sink,
		logger:    logger,
	}
}

// LogPeriod records a new period entry and schedules fresh reminders from
// the updated forecast. Reminders already pending from an earlier forecast
// are not removed.
func (s *CycleService) LogPeriod(ctx context.Context, startDate, endDate time.Time, notes string) (*cycle.PeriodEntry, error) {
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	entry := &cycle.PeriodEntry{
		ID:        uuid.NewString(),
		StartDate: prediction.StartOfDay(startDate),
		EndDate:   prediction.StartOfDay(endDate),
		Notes:     nullString(notes),
	}
	if err := s.repo.CreatePeriod(ctx, entry); err != nil {
		return nil, fmt.Errorf("log period: %w", err)
	}

	s.activity.Record(ctx, "Period Logged",
		fmt.Sprintf("Period from %s to %s", prediction.FormatDate(entry.StartDate), prediction.FormatDate(entry.EndDate)))
	s.logger.WithFields(logrus.Fields{
		"entry_id": entry.ID,
		"start":    entry.StartDate,
		"end":      entry.EndDate,
	}).Info("Period entry logged")

	if err := s.replanReminders(ctx); err != nil {
		// The entry itself is saved; a planning failure is reported but
		// does not undo the log operation.
		s.logger.WithError(err).Error("Failed to schedule reminders after period log")
	}

	return entry, nil
}

// UpdatePeriod rewrites an existing entry and re-plans reminders.
func (s *CycleService) UpdatePeriod(ctx context.Context, entry *cycle.PeriodEntry) error {
	if entry.EndDate.Before(entry.StartDate) {
		return ErrInvalidDateRange
	}
	if err := s.repo.UpdatePeriod(ctx, entry); err != nil {
		return fmt.Errorf("update period: %w", err)
	}
	s.activity.Record(ctx, "Period Updated", fmt.Sprintf("Entry %s updated", entry.ID))

	if err := s.replanReminders(ctx); err != nil {
		s.logger.WithError(err).Error("Failed to schedule reminders after period update")
	}
	return nil
}

// DeletePeriod removes an entry. Pending reminders derived from the old
// forecast stay scheduled.
func (s *CycleService) DeletePeriod(ctx context.Context, id string) error {
	if err := s.repo.DeletePeriod(ctx, id); err != nil {
		return fmt.Errorf("delete period: %w", err)
	}
	s.activity.Record(ctx, "Period Deleted", fmt.Sprintf("Entry %s removed", id))
	return nil
}

// ListPeriods returns all logged periods, most recent first.
func (s *CycleService) ListPeriods(ctx context.Context) ([]cycle.PeriodEntry, error) {
	return s.repo.ListPeriods(ctx)
}

// LogSymptom records a symptom entry. Symptoms do not feed the forecast.
func (s *CycleService) LogSymptom(ctx context.Context, date time.Time, symptomType string, severity cycle.SymptomSeverity, notes string) (*cycle.SymptomEntry, error) {
	entry := &cycle.SymptomEntry{
		ID:       uuid.NewString(),
		Date:     prediction.StartOfDay(date),
		Type:     symptomType,
		Severity: severity,
		Notes:    nullString(notes),
	}
	if err := s.repo.CreateSymptom(ctx, entry); err != nil {
		return nil, fmt.Errorf("log symptom: %w", err)
	}
	s.activity.Record(ctx, "Symptom Logged",
		fmt.Sprintf("%s (%s) on %s", symptomType, severity, prediction.FormatDate(entry.Date)))
	return entry, nil
}

// LogMood records a mood entry.
func (s *CycleService) LogMood(ctx context.Context, date time.Time, mood, notes string) (*cycle.MoodEntry, error) {
	entry := &cycle.MoodEntry{
		ID:    uuid.NewString(),
		Date:  prediction.StartOfDay(date),
		Mood:  mood,
		Notes: nullString(notes),
	}
	if err := s.repo.CreateMood(ctx, entry); err != nil {
		return nil, fmt.Errorf("log mood: %w", err)
	}
	s.activity.Record(ctx, "Mood Logged",
		fmt.Sprintf("%s on %s", mood, prediction.FormatDate(entry.Date)))
	return entry, nil
}

// Forecast recomputes the next-period prediction and fertility window from
// the current history.
func (s *CycleService) Forecast(ctx context.Context) (Forecast, error) {
	periods, err := s.repo.ListPeriods(ctx)
	if err != nil {
		return Forecast{}, fmt.Errorf("forecast: %w", err)
	}

	next, ok := prediction.PredictNextPeriod(periods)
	if !ok {
		return Forecast{}, nil
	}

	prefs, err := s.prefs.Load(ctx)
	if err != nil {
		return Forecast{}, fmt.Errorf("forecast: %w", err)
	}

	return Forecast{
		NextPeriod:    next,
		HasPrediction: true,
		Window:        prediction.FertilityWindow(next, prefs.AverageCycleLength),
	}, nil
}

// StatusOn classifies a single date against history and forecast.
func (s *CycleService) StatusOn(ctx context.Context, date time.Time) (prediction.Status, error) {
	periods, err := s.repo.ListPeriods(ctx)
	if err != nil {
		return prediction.Status{}, fmt.Errorf("status: %w", err)
	}
	next, ok := prediction.PredictNextPeriod(periods)
	return prediction.Classify(date, periods, next, ok), nil
}

// Preferences returns the stored user settings.
func (s *CycleService) Preferences(ctx context.Context) (cycle.Preferences, error) {
	return s.prefs.Load(ctx)
}

// UpdatePreferences persists new settings and re-plans reminders under them.
func (s *CycleService) UpdatePreferences(ctx context.Context, prefs cycle.Preferences) error {
	if err := s.prefs.Save(ctx, prefs); err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	s.activity.Record(ctx, "Preferences Updated",
		fmt.Sprintf("cycle %dd, period %dd, notifications %t", prefs.AverageCycleLength, prefs.AveragePeriodLength, prefs.Notifications))

	if err := s.replanReminders(ctx); err != nil {
		s.logger.WithError(err).Error("Failed to schedule reminders after preferences update")
	}
	return nil
}

func (s *CycleService) replanReminders(ctx context.Context) error {
	periods, err := s.repo.ListPeriods(ctx)
	if err != nil {
		return err
	}
	prefs, err := s.prefs.Load(ctx)
	if err != nil {
		return err
	}
	_, err = s.reminders.ScheduleCycleReminders(ctx, periods, prefs)
	return err
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
