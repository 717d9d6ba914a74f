package activity

import (
	"database/sql"
	"time"
)

// Log is a single audit trail entry. Rows are written by user actions and by
// the background jobs themselves (system entries carry a NULL user id), and
// are purged in bulk by the retention job.
type Log struct {
	ID        int64
	UserID    sql.NullInt64
	Action    string
	Details   string
	IPAddress string
	UserAgent string
	CreatedAt time.Time
}
