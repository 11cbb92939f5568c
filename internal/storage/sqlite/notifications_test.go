package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

func TestNotifications(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	renter := addRenter(t, store, "Asha", "9400000001")

	notify := func(typ, message string, renterID int64) *models.Notification {
		n := &models.Notification{Type: typ, Message: message, RenterID: renterID}
		if err := store.CreateNotification(ctx, n); err != nil {
			t.Fatalf("CreateNotification(%s) failed: %v", message, err)
		}
		return n
	}

	first := notify(models.NotificationNewRegistration, "New renter registered: Asha", renter.ID)
	second := notify(models.NotificationProfileUpdate, "Asha updated their profile", renter.ID)
	third := notify(models.NotificationNewComplaint, "New complaint submitted", 0)

	// Spread creation times so the ordering assertions are deterministic.
	base := time.Now().Unix()
	for i, n := range []*models.Notification{first, second, third} {
		at := base - int64(3600*(3-i))
		if _, err := store.db.Exec("UPDATE notifications SET created_at = ? WHERE notification_id = ?", at, n.ID); err != nil {
			t.Fatalf("Stamping created_at failed: %v", err)
		}
	}

	t.Run("list is newest first with renter names joined", func(t *testing.T) {
		records, err := store.ListNotifications(ctx, 50)
		if err != nil {
			t.Fatalf("ListNotifications failed: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("Record count: got %d, want 3", len(records))
		}
		wantIDs := []int64{third.ID, second.ID, first.ID}
		for i, record := range records {
			if record.ID != wantIDs[i] {
				t.Errorf("Position %d: got notification %d, want %d", i, record.ID, wantIDs[i])
			}
		}
		if records[1].RenterName != "Asha" {
			t.Errorf("RenterName: got %q, want %q", records[1].RenterName, "Asha")
		}
		if records[0].RenterName != "" {
			t.Errorf("RenterName for renterless notification: got %q", records[0].RenterName)
		}
	})

	t.Run("read notifications sink below unread", func(t *testing.T) {
		if err := store.MarkNotificationRead(ctx, third.ID); err != nil {
			t.Fatalf("MarkNotificationRead failed: %v", err)
		}

		records, err := store.ListNotifications(ctx, 50)
		if err != nil {
			t.Fatalf("ListNotifications failed: %v", err)
		}
		wantIDs := []int64{second.ID, first.ID, third.ID}
		for i, record := range records {
			if record.ID != wantIDs[i] {
				t.Errorf("Position %d: got notification %d, want %d", i, record.ID, wantIDs[i])
			}
		}
		if !records[2].IsRead {
			t.Error("Expected third notification to be marked read")
		}
	})

	t.Run("unread count reflects marks", func(t *testing.T) {
		count, err := store.UnreadNotificationCount(ctx)
		if err != nil {
			t.Fatalf("UnreadNotificationCount failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Unread count: got %d, want 2", count)
		}
	})

	t.Run("limit truncates the list", func(t *testing.T) {
		records, err := store.ListNotifications(ctx, 1)
		if err != nil {
			t.Fatalf("ListNotifications failed: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("Record count: got %d, want 1", len(records))
		}
		if records[0].ID != second.ID {
			t.Errorf("Expected newest unread notification first, got %d", records[0].ID)
		}
	})

	t.Run("marking unknown notification returns NotFound", func(t *testing.T) {
		err := store.MarkNotificationRead(ctx, 99999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
