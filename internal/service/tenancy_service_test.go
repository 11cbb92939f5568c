package service

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
	"github.com/nishkr/pgmate/internal/storage/sqlite"
)

// newTestStore creates a real store backed by a temp database file.
func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// lastNotification returns the newest unread notification, or nil.
func lastNotification(t *testing.T, store *sqlite.SQLiteStore) *models.NotificationRecord {
	t.Helper()

	records, err := store.ListNotifications(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(records) == 0 {
		return nil
	}
	return records[0]
}

func TestRegisterRenter(t *testing.T) {
	store := newTestStore(t)
	svc := NewTenancyService(store, testLogger())
	ctx := context.Background()

	t.Run("missing fields are rejected", func(t *testing.T) {
		var validationErr *ValidationError
		_, err := svc.RegisterRenter(ctx, "", "9000000001", "", "2025-01-15")
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected ValidationError, got %v", err)
		}
	})

	t.Run("registration notifies the admin", func(t *testing.T) {
		renter, err := svc.RegisterRenter(ctx, "Asha", "9000000001", "asha@example.com", "2025-01-15")
		if err != nil {
			t.Fatalf("RegisterRenter failed: %v", err)
		}
		if renter.ID == 0 {
			t.Error("Expected renter ID to be assigned")
		}

		n := lastNotification(t, store)
		if n == nil {
			t.Fatal("Expected a registration notification")
		}
		if n.Type != models.NotificationNewRegistration {
			t.Errorf("Notification type: got %q, want %q", n.Type, models.NotificationNewRegistration)
		}
		if n.RenterID != renter.ID {
			t.Errorf("Notification renter: got %d, want %d", n.RenterID, renter.ID)
		}
	})

	t.Run("duplicate phone propagates the storage error", func(t *testing.T) {
		_, err := svc.RegisterRenter(ctx, "Asha Clone", "9000000001", "", "2025-02-01")
		if !errors.Is(err, storage.ErrDuplicateKey) {
			t.Fatalf("Expected ErrDuplicateKey, got %v", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	store := newTestStore(t)
	svc := NewTenancyService(store, testLogger())
	ctx := context.Background()

	renter, err := svc.RegisterRenter(ctx, "Asha", "9000000001", "", "2025-01-15")
	if err != nil {
		t.Fatalf("RegisterRenter failed: %v", err)
	}

	t.Run("empty name is rejected", func(t *testing.T) {
		var validationErr *ValidationError
		err := svc.UpdateProfile(ctx, renter.ID, "", "asha@example.com")
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected ValidationError, got %v", err)
		}
	})

	t.Run("update notifies the admin", func(t *testing.T) {
		if err := svc.UpdateProfile(ctx, renter.ID, "Asha K", "asha@example.com"); err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}

		n := lastNotification(t, store)
		if n == nil || n.Type != models.NotificationProfileUpdate {
			t.Fatalf("Expected profile update notification, got %+v", n)
		}
	})
}

func TestCreateRoomValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewTenancyService(store, testLogger())
	ctx := context.Background()

	tests := []struct {
		name        string
		number      string
		roomType    string
		sharing     int64
		monthlyRent float64
	}{
		{"missing number", "", models.RoomTypeAC, 2, 8000},
		{"missing type", "101", "", 2, 8000},
		{"zero sharing", "101", models.RoomTypeAC, 0, 8000},
		{"zero rent", "101", models.RoomTypeAC, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var validationErr *ValidationError
			_, err := svc.CreateRoom(ctx, tt.number, tt.roomType, tt.sharing, tt.monthlyRent)
			if !errors.As(err, &validationErr) {
				t.Errorf("Expected ValidationError, got %v", err)
			}
		})
	}

	t.Run("valid room is created with beds", func(t *testing.T) {
		room, err := svc.CreateRoom(ctx, "101", models.RoomTypeNonAC, 2, 6000)
		if err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}

		beds, err := svc.ListRoomBeds(ctx, room.ID)
		if err != nil {
			t.Fatalf("ListRoomBeds failed: %v", err)
		}
		if len(beds) != 2 {
			t.Errorf("Bed count: got %d, want 2", len(beds))
		}
	})
}
