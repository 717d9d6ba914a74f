package app

import (
	"context"
	"fmt"
	"time"

	"gst_compliance_service/internal/domain/notification"
)

// Custom application-level errors for admin operations.
var ErrAdminNotAuthorized = fmt.Errorf("performing user is not authorized as an admin")

// AdminService exposes the jobs to operators for out-of-band invocation.
// Each trigger delegates to the same Run method the scheduler calls, so a
// manual run produces identical side effects to a scheduled one.
type AdminService struct {
	reminders       *ReminderService
	compliance      *ComplianceService
	cleanup         *CleanupService
	notifRepo       notification.Repository
	adminTelegramID int64
	loc             *time.Location
	now             func() time.Time
}

func NewAdminService(
	reminders *ReminderService,
	compliance *ComplianceService,
	cleanup *CleanupService,
	nr notification.Repository,
	adminTelegramID int64,
	loc *time.Location,
) *AdminService {
	return &AdminService{
		reminders:       reminders,
		compliance:      compliance,
		cleanup:         cleanup,
		notifRepo:       nr,
		adminTelegramID: adminTelegramID,
		loc:             loc,
		now:             time.Now,
	}
}

func (s *AdminService) authorize(performingID int64) error {
	if performingID != s.adminTelegramID {
		return ErrAdminNotAuthorized
	}
	return nil
}

// TriggerGSTReminders runs the daily GST reminder dispatch on demand.
func (s *AdminService) TriggerGSTReminders(ctx context.Context, performingID int64) (int, error) {
	if err := s.authorize(performingID); err != nil {
		return 0, err
	}
	return s.reminders.Run(ctx)
}

// TriggerComplianceReminders runs the weekly compliance nag on demand.
func (s *AdminService) TriggerComplianceReminders(ctx context.Context, performingID int64) (int, error) {
	if err := s.authorize(performingID); err != nil {
		return 0, err
	}
	return s.compliance.Run(ctx)
}

// TriggerLogCleanup runs the monthly retention purge on demand.
func (s *AdminService) TriggerLogCleanup(ctx context.Context, performingID int64) (int64, error) {
	if err := s.authorize(performingID); err != nil {
		return 0, err
	}
	return s.cleanup.Run(ctx)
}

// SentToday counts the notification rows dispatched since midnight in the
// configured timezone.
func (s *AdminService) SentToday(ctx context.Context, performingID int64) (int64, error) {
	if err := s.authorize(performingID); err != nil {
		return 0, err
	}
	return s.notifRepo.CountSentSince(ctx, startOfDay(s.now().In(s.loc)))
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
