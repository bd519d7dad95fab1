package scheduler

import (
	"context"
	"time"

	"cycle_tracker_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// sweepTimeout bounds a single dispatch sweep, including delivery calls.
const sweepTimeout = 1 * time.Minute

// SweepScheduler triggers periodic dispatch sweeps of the pending
// notification list.
type SweepScheduler struct {
	cronEngine    *cron.Cron
	dispatcher    app.Dispatcher
	logger        *logrus.Logger
	cronSpecSweep string
}

func NewSweepScheduler(dispatcher app.Dispatcher, logger *logrus.Logger, cronSpecSweep string) *SweepScheduler {
	return &SweepScheduler{
		cronEngine:    cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		dispatcher:    dispatcher,
		logger:        logger,
		cronSpecSweep: cronSpecSweep,
	}
}

func (s *SweepScheduler) Start() {
	s.logger.Info("Starting dispatch sweep scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecSweep, func() {
		s.logger.Debug("Cron job triggered for dispatch sweep.")
		ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
		defer cancel()
		if err := s.dispatcher.Sweep(ctx, time.Now()); err != nil {
			s.logger.WithError(err).Error("Dispatch sweep failed")
		}
	})
	if err != nil {
		s.logger.WithError(err).Fatal("Could not add dispatch sweep cron job")
	}

	s.cronEngine.Start()
	s.logger.WithField("spec", s.cronSpecSweep).Info("Dispatch sweep scheduler started.")
}

func (s *SweepScheduler) Stop() {
	s.logger.Info("Stopping dispatch sweep scheduler...")
	ctx := s.cronEngine.Stop() // Stops new runs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Dispatch sweep scheduler gracefully stopped.")
}
