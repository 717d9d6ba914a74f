package app

import (
	"context"
	"fmt"
	"time"

	"gst_compliance_service/internal/domain/activity"
	"gst_compliance_service/internal/domain/channel"
	"gst_compliance_service/internal/domain/gst"
	"gst_compliance_service/internal/domain/notification"
	"gst_compliance_service/internal/domain/vendor"
	"gst_compliance_service/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const gstReminderJobName = "gst_reminder_job"

// ReminderService is the daily GST due-date dispatcher. For every vendor it
// derives the filing frequency from the declared turnover bracket, matches
// today's due-date rules, and fans each match out to the configured reminder
// channels, persisting one notification row per successful delivery.
type ReminderService struct {
	vendorRepo   vendor.Repository
	notifRepo    notification.Repository
	activityRepo activity.Repository
	senders      []channel.Sender
	logger       *logrus.Entry
	loc          *time.Location
	now          func() time.Time
}

func NewReminderService(
	vr vendor.Repository,
	nr notification.Repository,
	ar activity.Repository,
	senders []channel.Sender,
	logger *logrus.Entry,
	loc *time.Location,
) *ReminderService {
	return &ReminderService{
		vendorRepo:   vr,
		notifRepo:    nr,
		activityRepo: ar,
		senders:      senders,
		logger:       logger,
		loc:          loc,
		now:          time.Now,
	}
}

// Run executes one dispatch pass and returns the number of notification rows
// created. A failure to enumerate vendors aborts the whole run; the next
// scheduled tick is the retry. Failures for a single vendor are logged and
// the loop moves on to the next vendor.
func (s *ReminderService) Run(ctx context.Context) (int, error) {
	runID := uuid.NewString()
	runLog := s.logger.WithField("run_id", runID)
	today := s.now().In(s.loc)
	runLog.WithField("date", today.Format("2006-01-02")).Info("Starting GST reminder dispatch")

	accounts, err := s.vendorRepo.ListAccounts(ctx)
	if err != nil {
		metrics.JobRunsTotal.WithLabelValues(gstReminderJobName, "error").Inc()
		runLog.WithError(err).Error("Failed to list vendor accounts, aborting run")
		return 0, fmt.Errorf("failed to list vendor accounts: %w", err)
	}

	sent := 0
	// Vendors are processed strictly sequentially to keep load on the
	// external channels predictable.
vendors:
	for _, acct := range accounts {
		frequency := gst.Classify(acct.TurnoverRange)
		rules := gst.MatchingRules(today, frequency)
		if len(rules) == 0 {
			continue
		}

		vendorLog := runLog.WithFields(logrus.Fields{
			"vendor_id": acct.ID,
			"user_id":   acct.UserID,
			"frequency": frequency,
		})

		for _, rule := range rules {
			for _, sender := range s.senders {
				ch := sender.Channel()
				if err := sender.SendReminder(acct, rule.Description); err != nil {
					metrics.ReminderSendFailureTotal.WithLabelValues(string(ch)).Inc()
					vendorLog.WithField("channel", ch).WithError(err).
						Errorf("Failed to send reminder for %s, skipping vendor", rule.Description)
					continue vendors
				}

				n := &notification.Notification{
					UserID:  acct.UserID,
					Title:   "GST Filing Reminder",
					Message: fmt.Sprintf("%s is due today for %s.", rule.Description, acct.BusinessName),
					Type:    notification.TypeWarning,
					Channel: ch,
				}
				if err := s.notifRepo.Create(ctx, n); err != nil {
					// The reminder already went out; delivery without an
					// audit row is the accepted tradeoff.
					vendorLog.WithField("channel", ch).WithError(err).
						Errorf("Failed to persist notification for %s, skipping vendor", rule.Description)
					continue vendors
				}
				metrics.RemindersSentTotal.WithLabelValues(string(ch)).Inc()
				sent++
			}
		}
	}

	metrics.JobRunsTotal.WithLabelValues(gstReminderJobName, "ok").Inc()
	runLog.WithField("reminders_sent", sent).Info("GST reminder dispatch finished")
	recordJobRun(ctx, s.activityRepo, runLog, gstReminderJobName, runID, fmt.Sprintf("reminders_sent=%d", sent))
	return sent, nil
}
