package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

// CreateNotification records an admin notification. The creation timestamp
// is assigned server-side.
func (s *SQLiteStore) CreateNotification(ctx context.Context, notification *models.Notification) error {
	notification.CreatedAt = time.Now().Unix()

	var renterID interface{}
	if notification.RenterID != 0 {
		renterID = notification.RenterID
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO notifications (notification_type, message, renter_id, created_at, is_read)
		VALUES (?, ?, ?, ?, 0)`,
		notification.Type, notification.Message, renterID, notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get notification id: %w", err)
	}
	notification.ID = id

	return nil
}

// ListNotifications returns up to limit notifications, unread first, newest
// first within each bucket.
func (s *SQLiteStore) ListNotifications(ctx context.Context, limit int) ([]*models.NotificationRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT n.notification_id, n.notification_type, n.message, n.renter_id,
		       n.created_at, n.is_read, r.name
		FROM notifications n
		LEFT JOIN renters r ON n.renter_id = r.renter_id
		ORDER BY n.is_read ASC, n.created_at DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var records []*models.NotificationRecord
	for rows.Next() {
		record := &models.NotificationRecord{}
		var renterID sql.NullInt64
		var renterName sql.NullString
		if err := rows.Scan(&record.ID, &record.Type, &record.Message, &renterID,
			&record.CreatedAt, &record.IsRead, &renterName); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if renterID.Valid {
			record.RenterID = renterID.Int64
		}
		if renterName.Valid {
			record.RenterName = renterName.String
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return records, nil
}

// MarkNotificationRead flags a notification as read.
func (s *SQLiteStore) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = 1 WHERE notification_id = ?",
		notificationID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("notification %d: %w", notificationID, storage.ErrNotFound)
	}

	return nil
}

// UnreadNotificationCount returns the number of unread notifications.
func (s *SQLiteStore) UnreadNotificationCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notifications WHERE is_read = 0",
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
