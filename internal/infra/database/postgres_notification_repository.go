package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gst_compliance_service/internal/domain/notification"
)

type PostgresNotificationRepository struct {
	db *sql.DB
}

func NewPostgresNotificationRepository(db *sql.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	query := `INSERT INTO notifications (user_id, title, message, type, channel, is_read)
               VALUES ($1, $2, $3, $4, $5, FALSE)
               RETURNING id, sent_at`

	err := r.db.QueryRowContext(ctx, query, n.UserID, n.Title, n.Message, n.Type, n.Channel).
		Scan(&n.ID, &n.SentAt)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

func (r *PostgresNotificationRepository) CountSentSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE sent_at >= $1`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting notifications: %w", err)
	}
	return count, nil
}
