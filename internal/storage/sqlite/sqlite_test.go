package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

// newTestStore creates a store backed by a temp database file.
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// addRenter inserts a renter and returns it.
func addRenter(t *testing.T, store *SQLiteStore, name, phone string) *models.Renter {
	t.Helper()

	renter := &models.Renter{
		Name:     name,
		Phone:    phone,
		JoinDate: "2025-01-15",
	}
	if err := store.CreateRenter(context.Background(), renter); err != nil {
		t.Fatalf("CreateRenter(%s) failed: %v", name, err)
	}
	return renter
}

func TestInitialization(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "init.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	t.Run("default admin is seeded", func(t *testing.T) {
		admin, err := store.AuthenticateAdmin(ctx, "admin", "admin123")
		if err != nil {
			t.Fatalf("AuthenticateAdmin failed: %v", err)
		}
		if admin == nil {
			t.Fatal("Expected default admin to authenticate")
		}
		if admin.Name != "Administrator" {
			t.Errorf("Admin name: got %q, want %q", admin.Name, "Administrator")
		}
	})

	t.Run("reopening does not reseed", func(t *testing.T) {
		store.Close()

		reopened, err := New(dbPath)
		if err != nil {
			t.Fatalf("Reopening store failed: %v", err)
		}
		defer reopened.Close()

		var count int
		if err := reopened.db.QueryRow("SELECT COUNT(*) FROM admins").Scan(&count); err != nil {
			t.Fatalf("Counting admins failed: %v", err)
		}
		if count != 1 {
			t.Errorf("Admin count after reopen: got %d, want 1", count)
		}
	})
}

func TestAuthenticateAdmin(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("wrong password is rejected", func(t *testing.T) {
		admin, err := store.AuthenticateAdmin(ctx, "admin", "wrong")
		if err != nil {
			t.Fatalf("AuthenticateAdmin failed: %v", err)
		}
		if admin != nil {
			t.Error("Expected nil admin for wrong password")
		}
	})

	t.Run("unknown username is rejected", func(t *testing.T) {
		admin, err := store.AuthenticateAdmin(ctx, "nobody", "admin123")
		if err != nil {
			t.Fatalf("AuthenticateAdmin failed: %v", err)
		}
		if admin != nil {
			t.Error("Expected nil admin for unknown username")
		}
	})
}

func TestRenters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("create assigns ID and active flag", func(t *testing.T) {
		renter := addRenter(t, store, "Asha", "9000000001")
		if renter.ID == 0 {
			t.Error("Expected renter ID to be assigned")
		}
		if !renter.IsActive {
			t.Error("Expected new renter to be active")
		}
	})

	t.Run("duplicate phone fails with DuplicateKey", func(t *testing.T) {
		addRenter(t, store, "Bina", "9000000002")

		err := store.CreateRenter(ctx, &models.Renter{
			Name:     "Bina Clone",
			Phone:    "9000000002",
			JoinDate: "2025-02-01",
		})
		if !errors.Is(err, storage.ErrDuplicateKey) {
			t.Fatalf("Expected ErrDuplicateKey, got %v", err)
		}
		if err.Error() != "Phone number already exists" {
			t.Errorf("Unexpected message: %q", err.Error())
		}
	})

	t.Run("authenticate matches active renter by phone", func(t *testing.T) {
		created := addRenter(t, store, "Chitra", "9000000003")

		renter, err := store.AuthenticateRenter(ctx, "9000000003")
		if err != nil {
			t.Fatalf("AuthenticateRenter failed: %v", err)
		}
		if renter == nil || renter.ID != created.ID {
			t.Fatalf("Expected renter %d, got %+v", created.ID, renter)
		}
	})

	t.Run("deactivated renter cannot authenticate", func(t *testing.T) {
		created := addRenter(t, store, "Deep", "9000000004")

		if err := store.DeactivateRenter(ctx, created.ID); err != nil {
			t.Fatalf("DeactivateRenter failed: %v", err)
		}

		renter, err := store.AuthenticateRenter(ctx, "9000000004")
		if err != nil {
			t.Fatalf("AuthenticateRenter failed: %v", err)
		}
		if renter != nil {
			t.Error("Expected nil renter after deactivation")
		}
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		renters, err := store.ListRenters(ctx)
		if err != nil {
			t.Fatalf("ListRenters failed: %v", err)
		}
		for i := 1; i < len(renters); i++ {
			if renters[i-1].Name > renters[i].Name {
				t.Errorf("Renters out of order: %q before %q", renters[i-1].Name, renters[i].Name)
			}
		}
	})

	t.Run("profile update changes name and email only", func(t *testing.T) {
		created := addRenter(t, store, "Esha", "9000000005")

		if err := store.UpdateRenterProfile(ctx, created.ID, "Esha K", "esha@example.com"); err != nil {
			t.Fatalf("UpdateRenterProfile failed: %v", err)
		}

		details, err := store.GetRenterDetails(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetRenterDetails failed: %v", err)
		}
		if details.Name != "Esha K" {
			t.Errorf("Name: got %q, want %q", details.Name, "Esha K")
		}
		if details.Email != "esha@example.com" {
			t.Errorf("Email: got %q, want %q", details.Email, "esha@example.com")
		}
		if details.Phone != "9000000005" {
			t.Errorf("Phone changed: got %q", details.Phone)
		}
	})

	t.Run("update of unknown renter returns NotFound", func(t *testing.T) {
		err := store.UpdateRenterProfile(ctx, 99999, "Ghost", "")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestGetRenterDetails(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	renter := addRenter(t, store, "Farid", "9000000010")

	t.Run("no bed allocated", func(t *testing.T) {
		details, err := store.GetRenterDetails(ctx, renter.ID)
		if err != nil {
			t.Fatalf("GetRenterDetails failed: %v", err)
		}
		if details.Room != nil {
			t.Errorf("Expected no room, got %+v", details.Room)
		}
	})

	t.Run("occupied bed is joined with room info", func(t *testing.T) {
		room := &models.Room{Number: "201", Type: models.RoomTypeAC, Sharing: 2, MonthlyRent: 9500}
		if err := store.CreateRoom(ctx, room); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}
		if err := store.AllocateBed(ctx, renter.ID, room.ID, 2); err != nil {
			t.Fatalf("AllocateBed failed: %v", err)
		}

		details, err := store.GetRenterDetails(ctx, renter.ID)
		if err != nil {
			t.Fatalf("GetRenterDetails failed: %v", err)
		}
		if details.Room == nil {
			t.Fatal("Expected room details after allocation")
		}
		if details.Room.RoomNumber != "201" {
			t.Errorf("RoomNumber: got %q, want %q", details.Room.RoomNumber, "201")
		}
		if details.Room.MonthlyRent != 9500 {
			t.Errorf("MonthlyRent: got %v, want 9500", details.Room.MonthlyRent)
		}
		if details.Room.BedNumber != 2 {
			t.Errorf("BedNumber: got %d, want 2", details.Room.BedNumber)
		}
	})

	t.Run("unknown renter returns NotFound", func(t *testing.T) {
		_, err := store.GetRenterDetails(ctx, 99999)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}
