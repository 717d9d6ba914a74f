package app

import (
	"context"
	"testing"
	"time"

	"gst_compliance_service/internal/domain/channel"
	"gst_compliance_service/internal/domain/gst"
	"gst_compliance_service/internal/domain/notification"
	"gst_compliance_service/internal/domain/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminID int64 = 42

func newAdminFixture(now time.Time) (*AdminService, *fakeNotificationRepo, *fakeSender) {
	acct := vendorAccount(1, 11, gst.TurnoverAbove5Cr)
	vr := &fakeVendorRepo{
		accounts: []*vendor.Account{acct},
		pending:  []*vendor.Account{acct},
	}
	nr := &fakeNotificationRepo{}
	ar := &fakeActivityRepo{}
	sender := &fakeSender{channel: notification.ChannelEmail}

	reminders := NewReminderService(vr, nr, ar, []channel.Sender{sender}, testLogger(), time.UTC)
	reminders.now = func() time.Time { return now }
	compliance := NewComplianceService(vr, nr, ar, testLogger())
	cleanup := NewCleanupService(ar, retention, testLogger(), time.UTC)
	cleanup.now = func() time.Time { return now }

	admin := NewAdminService(reminders, compliance, cleanup, nr, adminID, time.UTC)
	admin.now = func() time.Time { return now }
	return admin, nr, sender
}

func TestManualTriggersRejectNonAdmins(t *testing.T) {
	admin, nr, sender := newAdminFixture(march20)

	_, err := admin.TriggerGSTReminders(context.Background(), adminID+1)
	assert.ErrorIs(t, err, ErrAdminNotAuthorized)
	_, err = admin.TriggerComplianceReminders(context.Background(), adminID+1)
	assert.ErrorIs(t, err, ErrAdminNotAuthorized)
	_, err = admin.TriggerLogCleanup(context.Background(), adminID+1)
	assert.ErrorIs(t, err, ErrAdminNotAuthorized)
	_, err = admin.SentToday(context.Background(), adminID+1)
	assert.ErrorIs(t, err, ErrAdminNotAuthorized)

	// Rejected triggers leave no side effects.
	assert.Empty(t, nr.created)
	assert.Empty(t, sender.sent)
}

func TestManualTriggerMatchesScheduledBehavior(t *testing.T) {
	// Manual invocation is a thin authorized wrapper over the same Run
	// method the scheduler calls, so side effects are identical.
	admin, nr, sender := newAdminFixture(march20)

	count, err := admin.TriggerGSTReminders(context.Background(), adminID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, nr.created, 1)
	assert.Equal(t, notification.ChannelEmail, nr.created[0].Channel)
	assert.Len(t, sender.sent, 1)
}

func TestSentTodayCountsFromLocalMidnight(t *testing.T) {
	now := time.Date(2025, time.March, 20, 17, 45, 0, 0, time.UTC)
	admin, nr, _ := newAdminFixture(now)
	nr.countToReturn = 7

	count, err := admin.SentToday(context.Background(), adminID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.Equal(t, time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), nr.sinceArg)
}
