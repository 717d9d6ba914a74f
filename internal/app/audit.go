package app

import (
	"context"

	"gst_compliance_service/internal/domain/activity"

	"github.com/sirupsen/logrus"
)

// recordJobRun appends a system audit row for a finished job run. The write
// is best-effort: a failure is logged and never fails the run that already
// completed.
func recordJobRun(ctx context.Context, repo activity.Repository, log *logrus.Entry, action, runID, details string) {
	entry := &activity.Log{
		Action:    action,
		Details:   "run_id=" + runID + " " + details,
		IPAddress: "system",
		UserAgent: "scheduler",
	}
	if err := repo.Create(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to record job run in activity log")
	}
}
