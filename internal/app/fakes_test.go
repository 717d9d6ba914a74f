package app

import (
	"context"
	"time"

	"gst_compliance_service/internal/domain/activity"
	"gst_compliance_service/internal/domain/notification"
	"gst_compliance_service/internal/domain/vendor"
)

type fakeVendorRepo struct {
	accounts []*vendor.Account
	pending  []*vendor.Account
	listErr  error
}

func (f *fakeVendorRepo) ListAccounts(_ context.Context) ([]*vendor.Account, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.accounts, nil
}

func (f *fakeVendorRepo) ListAccountsByComplianceStatus(_ context.Context, status vendor.ComplianceStatus) ([]*vendor.Account, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if status == vendor.CompliancePending {
		return f.pending, nil
	}
	return nil, nil
}

type fakeNotificationRepo struct {
	created       []*notification.Notification
	failForUser   map[int64]error
	sinceArg      time.Time
	countToReturn int64
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	if err, ok := f.failForUser[n.UserID]; ok {
		return err
	}
	n.ID = int64(len(f.created) + 1)
	n.SentAt = time.Now()
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) CountSentSince(_ context.Context, since time.Time) (int64, error) {
	f.sinceArg = since
	return f.countToReturn, nil
}

type fakeActivityRepo struct {
	created   []*activity.Log
	rows      []time.Time
	deleteErr error
	cutoffArg time.Time
}

func (f *fakeActivityRepo) Create(_ context.Context, l *activity.Log) error {
	f.created = append(f.created, l)
	return nil
}

// DeleteOlderThan mirrors the SQL `created_at < cutoff`: strictly-older rows
// go, rows at the cutoff stay.
func (f *fakeActivityRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoffArg = cutoff
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	var kept []time.Time
	var deleted int64
	for _, ts := range f.rows {
		if ts.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, ts)
	}
	f.rows = kept
	return deleted, nil
}

type sentReminder struct {
	vendorID    int64
	description string
}

type fakeSender struct {
	channel       notification.Channel
	sent          []sentReminder
	failForVendor map[int64]error
}

func (f *fakeSender) Channel() notification.Channel {
	return f.channel
}

func (f *fakeSender) SendReminder(account *vendor.Account, dueDescription string) error {
	if err, ok := f.failForVendor[account.ID]; ok {
		return err
	}
	f.sent = append(f.sent, sentReminder{vendorID: account.ID, description: dueDescription})
	return nil
}
