package channel

import (
	"gst_compliance_service/internal/domain/notification"
	"gst_compliance_service/internal/domain/vendor"
)

// Sender delivers a due-date reminder to a vendor over one external medium.
// This decouples the dispatch jobs from the concrete provider SDKs.
type Sender interface {
	// Channel reports which notification channel this sender writes to.
	Channel() notification.Channel
	// SendReminder composes and delivers a reminder for one due return type,
	// described by the rule's human-readable description string.
	SendReminder(account *vendor.Account, dueDescription string) error
}
