package notification

import "time"

// Type is the severity class shown to the user.
type Type string

const (
	TypeInfo    Type = "info"
	TypeWarning Type = "warning"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

// Channel is the delivery medium a notification was dispatched through.
type Channel string

const (
	ChannelInApp    Channel = "in-app"
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

// Notification is a persisted record of a dispatched message. Rows are
// created by the dispatch jobs and never updated afterwards, except the
// IsRead flag which the UI flips.
type Notification struct {
	ID      int64
	UserID  int64
	Title   string
	Message string
	Type    Type
	Channel Channel
	IsRead  bool
	SentAt  time.Time
}
