package service

import (
	"context"
	"log/slog"

	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

// defaultNotificationLimit caps the admin notification feed.
const defaultNotificationLimit = 50

// NotificationService serves the admin notification feed.
type NotificationService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(store storage.Store, logger *slog.Logger) *NotificationService {
	return &NotificationService{store: store, logger: logger}
}

// List returns recent notifications, unread first. A non-positive limit
// falls back to the default.
func (s *NotificationService) List(ctx context.Context, limit int) ([]*models.NotificationRecord, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	return s.store.ListNotifications(ctx, limit)
}

// MarkRead flags a notification as acknowledged.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID int64) error {
	if err := s.store.MarkNotificationRead(ctx, notificationID); err != nil {
		s.logger.Error("MarkRead failed", "notification_id", notificationID, "error", err)
		return err
	}
	return nil
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.store.UnreadNotificationCount(ctx)
}
