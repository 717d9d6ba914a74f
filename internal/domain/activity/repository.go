package activity

import (
	"context"
	"time"
)

// Repository defines persistence operations for activity log entries.
type Repository interface {
	Create(ctx context.Context, l *Log) error
	// DeleteOlderThan removes every row created strictly before the cutoff
	// in one bulk statement and reports how many were deleted. Rows created
	// exactly at the cutoff survive.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
