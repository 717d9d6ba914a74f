package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gst_compliance_service/internal/domain/activity"
)

type PostgresActivityLogRepository struct {
	db *sql.DB
}

func NewPostgresActivityLogRepository(db *sql.DB) *PostgresActivityLogRepository {
	return &PostgresActivityLogRepository{db: db}
}

func (r *PostgresActivityLogRepository) Create(ctx context.Context, l *activity.Log) error {
	query := `INSERT INTO activity_logs (user_id, action, details, ip_address, user_agent)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, l.UserID, l.Action, l.Details, l.IPAddress, l.UserAgent).
		Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating activity log: %w", err)
	}
	return nil
}

// DeleteOlderThan removes rows created strictly before the cutoff. The
// comparison is exclusive: a row created exactly at the cutoff is kept.
func (r *PostgresActivityLogRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM activity_logs WHERE created_at < $1`

	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error deleting old activity logs: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading deleted row count: %w", err)
	}
	return deleted, nil
}
