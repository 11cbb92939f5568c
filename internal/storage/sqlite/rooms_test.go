package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

func TestCreateRoom(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("creates sharing-many unoccupied beds numbered 1..N", func(t *testing.T) {
		room := &models.Room{Number: "101", Type: models.RoomTypeAC, Sharing: 3, MonthlyRent: 8000}
		if err := store.CreateRoom(ctx, room); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}
		if room.ID == 0 {
			t.Error("Expected room ID to be assigned")
		}

		beds, err := store.ListRoomBeds(ctx, room.ID)
		if err != nil {
			t.Fatalf("ListRoomBeds failed: %v", err)
		}
		if len(beds) != 3 {
			t.Fatalf("Bed count: got %d, want 3", len(beds))
		}
		for i, bed := range beds {
			if bed.Number != int64(i+1) {
				t.Errorf("Bed %d number: got %d, want %d", i, bed.Number, i+1)
			}
			if bed.IsOccupied {
				t.Errorf("Bed %d should start unoccupied", bed.Number)
			}
			if bed.RenterID != 0 {
				t.Errorf("Bed %d should start without a renter", bed.Number)
			}
		}
	})

	t.Run("duplicate room number fails and leaves no beds behind", func(t *testing.T) {
		err := store.CreateRoom(ctx, &models.Room{Number: "101", Type: models.RoomTypeNonAC, Sharing: 4, MonthlyRent: 6000})
		if !errors.Is(err, storage.ErrDuplicateKey) {
			t.Fatalf("Expected ErrDuplicateKey, got %v", err)
		}
		if err.Error() != "Room 101 already exists" {
			t.Errorf("Unexpected message: %q", err.Error())
		}

		var totalBeds int
		if err := store.db.QueryRow("SELECT COUNT(*) FROM beds").Scan(&totalBeds); err != nil {
			t.Fatalf("Counting beds failed: %v", err)
		}
		if totalBeds != 3 {
			t.Errorf("Bed count after failed create: got %d, want 3", totalBeds)
		}
	})

	t.Run("list is ordered by room number", func(t *testing.T) {
		if err := store.CreateRoom(ctx, &models.Room{Number: "100", Type: models.RoomTypeNonAC, Sharing: 2, MonthlyRent: 5500}); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}

		rooms, err := store.ListRooms(ctx)
		if err != nil {
			t.Fatalf("ListRooms failed: %v", err)
		}
		if len(rooms) != 2 {
			t.Fatalf("Room count: got %d, want 2", len(rooms))
		}
		if rooms[0].Number != "100" || rooms[1].Number != "101" {
			t.Errorf("Rooms out of order: %q, %q", rooms[0].Number, rooms[1].Number)
		}
	})
}

func TestAllocateBed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	room := &models.Room{Number: "101", Type: models.RoomTypeAC, Sharing: 3, MonthlyRent: 8000}
	if err := store.CreateRoom(ctx, room); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	r1 := addRenter(t, store, "R1", "9100000001")
	r2 := addRenter(t, store, "R2", "9100000002")

	t.Run("first allocation succeeds", func(t *testing.T) {
		if err := store.AllocateBed(ctx, r1.ID, room.ID, 1); err != nil {
			t.Fatalf("AllocateBed failed: %v", err)
		}

		beds, err := store.ListRoomBeds(ctx, room.ID)
		if err != nil {
			t.Fatalf("ListRoomBeds failed: %v", err)
		}
		if !beds[0].IsOccupied || beds[0].RenterID != r1.ID {
			t.Errorf("Bed 1 not assigned to R1: %+v", beds[0])
		}
	})

	t.Run("renter with a bed cannot take a second", func(t *testing.T) {
		err := store.AllocateBed(ctx, r1.ID, room.ID, 2)
		if !errors.Is(err, storage.ErrAlreadyAssigned) {
			t.Fatalf("Expected ErrAlreadyAssigned, got %v", err)
		}

		// Bed 2 stays free and R1 still holds exactly one bed.
		beds, _ := store.ListRoomBeds(ctx, room.ID)
		if beds[1].IsOccupied {
			t.Error("Bed 2 should remain unoccupied after rejected allocation")
		}
		var held int
		if err := store.db.QueryRow("SELECT COUNT(*) FROM beds WHERE renter_id = ?", r1.ID).Scan(&held); err != nil {
			t.Fatalf("Counting beds failed: %v", err)
		}
		if held != 1 {
			t.Errorf("R1 holds %d beds, want 1", held)
		}
	})

	t.Run("occupied bed is not available", func(t *testing.T) {
		err := store.AllocateBed(ctx, r2.ID, room.ID, 1)
		if !errors.Is(err, storage.ErrNotAvailable) {
			t.Fatalf("Expected ErrNotAvailable, got %v", err)
		}
		if err.Error() != "Bed is not available" {
			t.Errorf("Unexpected message: %q", err.Error())
		}
	})

	t.Run("nonexistent bed is not available", func(t *testing.T) {
		err := store.AllocateBed(ctx, r2.ID, room.ID, 9)
		if !errors.Is(err, storage.ErrNotAvailable) {
			t.Fatalf("Expected ErrNotAvailable, got %v", err)
		}
	})
}

func TestDashboardStats(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	room := &models.Room{Number: "101", Type: models.RoomTypeAC, Sharing: 3, MonthlyRent: 8000}
	if err := store.CreateRoom(ctx, room); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}
	r1 := addRenter(t, store, "R1", "9100000001")
	r2 := addRenter(t, store, "R2", "9100000002")
	if err := store.AllocateBed(ctx, r1.ID, room.ID, 1); err != nil {
		t.Fatalf("AllocateBed failed: %v", err)
	}
	if err := store.DeactivateRenter(ctx, r2.ID); err != nil {
		t.Fatalf("DeactivateRenter failed: %v", err)
	}

	stats, err := store.DashboardStats(ctx)
	if err != nil {
		t.Fatalf("DashboardStats failed: %v", err)
	}

	want := models.DashboardStats{
		TotalRooms:    1,
		TotalBeds:     3,
		OccupiedBeds:  1,
		EmptyBeds:     2,
		ActiveRenters: 1,
	}
	if *stats != want {
		t.Errorf("DashboardStats: got %+v, want %+v", *stats, want)
	}
}
