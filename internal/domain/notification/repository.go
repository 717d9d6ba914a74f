package notification

import (
	"context"
	"time"
)

// Repository defines persistence operations for Notification records.
type Repository interface {
	// Create inserts a notification row and fills in its ID and SentAt.
	Create(ctx context.Context, n *Notification) error
	// CountSentSince counts notification rows created at or after the given
	// instant, across all users. Used for the operator status command.
	CountSentSince(ctx context.Context, since time.Time) (int64, error)
}
