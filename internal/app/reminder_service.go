// internal/app/reminder_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cycle_tracker_bot/internal/domain/activity"
	"cycle_tracker_bot/internal/domain/cycle"
	"cycle_tracker_bot/internal/domain/delivery"
	"cycle_tracker_bot/internal/domain/notification"
	"cycle_tracker_bot/internal/domain/prediction"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Dispatcher is the externally triggered entry point for firing due
// reminders. The hosting application calls Sweep once at startup and
// periodically afterwards.
type Dispatcher interface {
	Sweep(ctx context.Context, now time.Time) error
}

// ReminderService owns the pending-notification list: it plans reminder
// batteries from a forecast, persists them, and fires the due ones.
type ReminderService struct {
	store    notification.Store
	client   delivery.Client
	activity activity.Sink
	logger   *logrus.Logger

	// mu serializes the load/partition/save cycle within this process.
	// Cross-process exclusion is intentionally not provided; a single
	// application instance is assumed.
	mu sync.Mutex

	permissionOnce    sync.Once
	permissionGranted bool
}

func NewReminderService(
	store notification.Store,
	client delivery.Client,
	sink activity.Sink,
	logger *logrus.Logger,
) *ReminderService {
	return &ReminderService{
		store:    store,
		client:   client,
		activity: sink,
		logger:   logger,
	}
}

// Schedule appends a reminder to the persisted pending list. The record is
// persisted regardless of delivery permission; permission only gates what
// happens at fire time. The boolean reports whether the delivery capability
// is available, the error reports store failures.
func (s *ReminderService) Schedule(ctx context.Context, n notification.Notification) (bool, error) {
	granted := s.checkPermission(ctx)

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.store.Load(ctx)
	if err != nil {
		return granted, fmt.Errorf("schedule: %w", err)
	}
	pending = append(pending, n)
	if err := s.store.Save(ctx, pending); err != nil {
		return granted, fmt.Errorf("schedule: %w", err)
	}

	s.activity.Record(ctx, "Notification Scheduled",
		fmt.Sprintf("%s notification scheduled for %s", n.Type, n.ScheduledDate.Format("Jan 2, 2006")))
	s.logger.WithFields(logrus.Fields{
		"notification_id": n.ID,
		"type":            n.Type,
		"scheduled_for":   n.ScheduledDate,
	}).Info("Reminder scheduled")

	return granted, nil
}

// ScheduleCycleReminders recomputes the forecast from history and schedules
// every battery the user's preferences allow. Previously scheduled reminders
// are left in place; a fresh forecast does not retroactively remove them.
func (s *ReminderService) ScheduleCycleReminders(ctx context.Context, periods []cycle.PeriodEntry, prefs cycle.Preferences) (bool, error) {
	if !prefs.Notifications {
		s.logger.Debug("Notifications disabled in preferences, skipping reminder planning")
		return false, nil
	}

	predicted, ok := prediction.PredictNextPeriod(periods)
	if !ok {
		s.logger.Debug("No period history, nothing to plan")
		return false, nil
	}
	window := prediction.FertilityWindow(predicted, prefs.AverageCycleLength)

	var batch []notification.Notification
	if prefs.Reminders.PeriodStart {
		battery := notification.PlanPeriodReminders(predicted, prefs.AveragePeriodLength)
		if !prefs.Reminders.PeriodEnd {
			// The end-of-period check-in is always the final entry.
			battery = battery[:len(battery)-1]
		}
		batch = append(batch, battery...)
		batch = append(batch, notification.PlanPMSReminder(predicted)...)
	}
	for _, n := range notification.PlanOvulationReminders(window.Ovulation, window.Start) {
		switch n.Type {
		case notification.TypeFertility:
			if prefs.Reminders.Fertility {
				batch = append(batch, n)
			}
		case notification.TypeOvulation:
			if prefs.Reminders.Ovulation {
				batch = append(batch, n)
			}
		}
	}
	batch = append(batch, notification.PlanCycleInsight(periods)...)

	// Batteries are independent: a store failure on one record must not
	// stop the rest from being scheduled.
	deliverable := false
	var errs []error
	for _, n := range batch {
		granted, err := s.Schedule(ctx, n)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		deliverable = deliverable || granted
	}

	s.logger.WithFields(logrus.Fields{
		"planned":     len(batch),
		"next_period": predicted,
	}).Info("Cycle reminders scheduled")

	return deliverable, errors.Join(errs...)
}

// Sweep partitions the pending list into due and future records, attempts
// delivery of every due one, and rewrites the list once afterwards.
//
// Delivery is at-least-once: a record whose delivery attempt fails stays
// pending and is retried on the next sweep. A record fired while delivery
// permission is absent is discarded without delivery, matching the
// persist-always, gate-at-fire-time contract. Sweeping twice with a fixed
// now and no new schedules is a no-op the second time.
func (s *ReminderService) Sweep(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	granted := s.checkPermission(ctx)

	kept := make([]notification.Notification, 0, len(pending))
	fired, failed := 0, 0
	for _, n := range pending {
		if !n.Due(now) {
			kept = append(kept, n)
			continue
		}
		if !granted {
			s.logger.WithField("notification_id", n.ID).Debug("Due reminder discarded, delivery permission absent")
			continue
		}
		if err := s.client.Deliver(ctx, n.Title, n.Body); err != nil {
			failed++
			kept = append(kept, n) // retry on the next sweep
			s.logger.WithError(err).WithField("notification_id", n.ID).Warn("Reminder delivery failed, will retry")
			continue
		}
		fired++
		s.activity.Record(ctx, "Notification Sent",
			fmt.Sprintf("%s notification: %s", n.Type, n.Title))
		s.logger.WithFields(logrus.Fields{
			"notification_id": n.ID,
			"type":            n.Type,
		}).Info("Reminder delivered")
	}

	if err := s.store.Save(ctx, kept); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	if fired > 0 || failed > 0 {
		s.logger.WithFields(logrus.Fields{
			"delivered": fired,
			"failed":    failed,
			"pending":   len(kept),
		}).Info("Dispatch sweep completed")
	}
	return nil
}

// Pending returns a copy of the persisted pending list.
func (s *ReminderService) Pending(ctx context.Context) ([]notification.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// checkPermission asks the delivery capability for permission once and
// caches the answer for the lifetime of the service. Errors degrade to
// "not granted" rather than failing the calling operation.
func (s *ReminderService) checkPermission(ctx context.Context) bool {
	s.permissionOnce.Do(func() {
		granted, err := s.client.RequestPermission(ctx)
		if err != nil {
			s.logger.WithError(err).Warn("Delivery permission check failed, treating as denied")
			return
		}
		s.permissionGranted = granted
		if !granted {
			s.logger.Warn("Delivery permission denied; reminders will be recorded but not delivered")
		}
	})
	return s.permissionGranted
}
