package app

import (
	"context"
	"fmt"
	"time"

	"gst_compliance_service/internal/domain/activity"
	"gst_compliance_service/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const logCleanupJobName = "log_cleanup_job"

// CleanupService is the monthly retention job: one bulk delete of activity
// log rows strictly older than the retention window. Rows aged exactly the
// window survive until the next run.
type CleanupService struct {
	activityRepo activity.Repository
	retention    time.Duration
	logger       *logrus.Entry
	loc          *time.Location
	now          func() time.Time
}

func NewCleanupService(
	ar activity.Repository,
	retention time.Duration,
	logger *logrus.Entry,
	loc *time.Location,
) *CleanupService {
	return &CleanupService{
		activityRepo: ar,
		retention:    retention,
		logger:       logger,
		loc:          loc,
		now:          time.Now,
	}
}

// Run executes one purge and returns the number of rows deleted. The delete
// is a single bulk statement, so any error is fatal for the run.
func (s *CleanupService) Run(ctx context.Context) (int64, error) {
	runID := uuid.NewString()
	runLog := s.logger.WithField("run_id", runID)
	cutoff := s.now().In(s.loc).Add(-s.retention)
	runLog.WithField("cutoff", cutoff.Format(time.RFC3339)).Info("Starting activity log cleanup")

	deleted, err := s.activityRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		metrics.JobRunsTotal.WithLabelValues(logCleanupJobName, "error").Inc()
		runLog.WithError(err).Error("Failed to delete old activity logs")
		return 0, fmt.Errorf("failed to delete old activity logs: %w", err)
	}

	metrics.JobRunsTotal.WithLabelValues(logCleanupJobName, "ok").Inc()
	metrics.ActivityLogsPurgedTotal.Add(float64(deleted))
	runLog.WithField("rows_deleted", deleted).Info("Activity log cleanup finished")
	recordJobRun(ctx, s.activityRepo, runLog, logCleanupJobName, runID, fmt.Sprintf("rows_deleted=%d", deleted))
	return deleted, nil
}
