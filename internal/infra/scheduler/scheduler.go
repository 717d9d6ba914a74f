package scheduler

import (
	"context"
	"time"

	"gst_compliance_service/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// JobScheduler triggers the three background jobs on fixed calendar
// schedules, all evaluated in one explicitly configured timezone. It is a
// pure time trigger: job errors are logged here and never retried — the next
// tick is the de facto retry.
type JobScheduler struct {
	cronEngine *cron.Cron
	reminders  *app.ReminderService
	compliance *app.ComplianceService
	cleanup    *app.CleanupService
	logger     *logrus.Entry

	specGSTReminders        string // e.g. "0 8 * * *" (daily 08:00)
	specComplianceReminders string // e.g. "0 9 * * 1" (Monday 09:00)
	specLogCleanup          string // e.g. "0 2 1 * *" (1st of month 02:00)
}

func NewJobScheduler(
	loc *time.Location,
	reminders *app.ReminderService,
	compliance *app.ComplianceService,
	cleanup *app.CleanupService,
	logger *logrus.Entry,
	specGSTReminders string,
	specComplianceReminders string,
	specLogCleanup string,
) *JobScheduler {
	return &JobScheduler{
		cronEngine:              cron.New(cron.WithLocation(loc)),
		reminders:               reminders,
		compliance:              compliance,
		cleanup:                 cleanup,
		logger:                  logger,
		specGSTReminders:        specGSTReminders,
		specComplianceReminders: specComplianceReminders,
		specLogCleanup:          specLogCleanup,
	}
}

// Start registers the cron entries and starts the engine.
func (s *JobScheduler) Start() error {
	s.logger.Info("Starting job scheduler")

	_, err := s.cronEngine.AddFunc(s.specGSTReminders, func() {
		s.logger.Info("Cron triggered: GST reminder dispatch")
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()
		if count, err := s.reminders.Run(ctx); err != nil {
			s.logger.WithError(err).Error("GST reminder dispatch failed")
		} else {
			s.logger.WithField("reminders_sent", count).Info("GST reminder dispatch completed")
		}
	})
	if err != nil {
		return err
	}

	_, err = s.cronEngine.AddFunc(s.specComplianceReminders, func() {
		s.logger.Info("Cron triggered: compliance reminder dispatch")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if count, err := s.compliance.Run(ctx); err != nil {
			s.logger.WithError(err).Error("Compliance reminder dispatch failed")
		} else {
			s.logger.WithField("notifications_sent", count).Info("Compliance reminder dispatch completed")
		}
	})
	if err != nil {
		return err
	}

	_, err = s.cronEngine.AddFunc(s.specLogCleanup, func() {
		s.logger.Info("Cron triggered: activity log cleanup")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if deleted, err := s.cleanup.Run(ctx); err != nil {
			s.logger.WithError(err).Error("Activity log cleanup failed")
		} else {
			s.logger.WithField("rows_deleted", deleted).Info("Activity log cleanup completed")
		}
	})
	if err != nil {
		return err
	}

	s.cronEngine.Start()
	s.logger.Info("Job scheduler started with 3 jobs")
	return nil
}

// Entries returns the registered cron entries.
func (s *JobScheduler) Entries() []cron.Entry {
	return s.cronEngine.Entries()
}

// Stop stops the scheduler and waits for any running job to finish.
func (s *JobScheduler) Stop() {
	s.logger.Info("Stopping job scheduler")
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("Job scheduler gracefully stopped")
}
