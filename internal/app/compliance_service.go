package app

import (
	"context"
	"fmt"

	"gst_compliance_service/internal/domain/activity"
	"gst_compliance_service/internal/domain/notification"
	"gst_compliance_service/internal/domain/vendor"
	"gst_compliance_service/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const complianceReminderJobName = "compliance_reminder_job"

// ComplianceService is the weekly nag job: every vendor whose compliance
// status is still pending gets one in-app notification. No external channel
// is involved.
type ComplianceService struct {
	vendorRepo   vendor.Repository
	notifRepo    notification.Repository
	activityRepo activity.Repository
	logger       *logrus.Entry
}

func NewComplianceService(
	vr vendor.Repository,
	nr notification.Repository,
	ar activity.Repository,
	logger *logrus.Entry,
) *ComplianceService {
	return &ComplianceService{
		vendorRepo:   vr,
		notifRepo:    nr,
		activityRepo: ar,
		logger:       logger,
	}
}

// Run executes one pass and returns the number of notifications created.
// A write failure for one vendor is logged and does not abort the loop.
func (s *ComplianceService) Run(ctx context.Context) (int, error) {
	runID := uuid.NewString()
	runLog := s.logger.WithField("run_id", runID)
	runLog.Info("Starting compliance reminder dispatch")

	accounts, err := s.vendorRepo.ListAccountsByComplianceStatus(ctx, vendor.CompliancePending)
	if err != nil {
		metrics.JobRunsTotal.WithLabelValues(complianceReminderJobName, "error").Inc()
		runLog.WithError(err).Error("Failed to list pending vendors, aborting run")
		return 0, fmt.Errorf("failed to list pending vendors: %w", err)
	}

	sent := 0
	for _, acct := range accounts {
		n := &notification.Notification{
			UserID:  acct.UserID,
			Title:   "Compliance Status Pending",
			Message: fmt.Sprintf("The compliance status for %s is still pending. Please submit the outstanding documents.", acct.BusinessName),
			Type:    notification.TypeWarning,
			Channel: notification.ChannelInApp,
		}
		if err := s.notifRepo.Create(ctx, n); err != nil {
			runLog.WithField("vendor_id", acct.ID).WithError(err).
				Error("Failed to create compliance notification, continuing")
			continue
		}
		sent++
	}

	metrics.JobRunsTotal.WithLabelValues(complianceReminderJobName, "ok").Inc()
	runLog.WithField("notifications_sent", sent).Info("Compliance reminder dispatch finished")
	recordJobRun(ctx, s.activityRepo, runLog, complianceReminderJobName, runID, fmt.Sprintf("notifications_sent=%d", sent))
	return sent, nil
}
