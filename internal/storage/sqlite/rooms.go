package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

// CreateRoom inserts a new room and its beds, numbered 1..Sharing, in a
// single transaction. A room without its beds is an invariant violation,
// so partial creation never commits.
func (s *SQLiteStore) CreateRoom(ctx context.Context, room *models.Room) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO rooms (room_number, room_type, sharing_type, monthly_rent) VALUES (?, ?, ?, ?)",
		room.Number, room.Type, room.Sharing, room.MonthlyRent,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.Fail(storage.ErrDuplicateKey, fmt.Sprintf("Room %s already exists", room.Number))
		}
		return fmt.Errorf("failed to insert room: %w", err)
	}

	roomID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get room id: %w", err)
	}

	for bedNum := int64(1); bedNum <= room.Sharing; bedNum++ {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO beds (room_id, bed_number) VALUES (?, ?)",
			roomID, bedNum,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bed %d: %w", bedNum, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	room.ID = roomID
	return nil
}

// ListRooms returns all rooms ordered by room number.
func (s *SQLiteStore) ListRooms(ctx context.Context) ([]*models.Room, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT room_id, room_number, room_type, sharing_type, monthly_rent FROM rooms ORDER BY room_number",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(&room.ID, &room.Number, &room.Type, &room.Sharing, &room.MonthlyRent); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rooms: %w", err)
	}

	return rooms, nil
}

// ListRoomBeds returns the beds of a room ordered by bed number.
func (s *SQLiteStore) ListRoomBeds(ctx context.Context, roomID int64) ([]*models.Bed, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT bed_id, room_id, bed_number, renter_id, is_occupied FROM beds WHERE room_id = ? ORDER BY bed_number",
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list beds: %w", err)
	}
	defer rows.Close()

	var beds []*models.Bed
	for rows.Next() {
		bed := &models.Bed{}
		var renterID sql.NullInt64
		if err := rows.Scan(&bed.ID, &bed.RoomID, &bed.Number, &renterID, &bed.IsOccupied); err != nil {
			return nil, fmt.Errorf("failed to scan bed: %w", err)
		}
		if renterID.Valid {
			bed.RenterID = renterID.Int64
		}
		beds = append(beds, bed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate beds: %w", err)
	}

	return beds, nil
}

// AllocateBed assigns a bed to a renter. The availability check, the
// one-bed-per-renter check, and the occupancy update run in one transaction
// so two concurrent allocations cannot both see the bed as free.
func (s *SQLiteStore) AllocateBed(ctx context.Context, renterID, roomID, bedNumber int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var occupied bool
	err = tx.QueryRowContext(ctx,
		"SELECT is_occupied FROM beds WHERE room_id = ? AND bed_number = ?",
		roomID, bedNumber,
	).Scan(&occupied)
	if err == sql.ErrNoRows {
		return storage.Fail(storage.ErrNotAvailable, "Bed is not available")
	}
	if err != nil {
		return fmt.Errorf("failed to check bed: %w", err)
	}
	if occupied {
		return storage.Fail(storage.ErrNotAvailable, "Bed is not available")
	}

	var held int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM beds WHERE renter_id = ?",
		renterID,
	).Scan(&held)
	if err != nil {
		return fmt.Errorf("failed to check renter beds: %w", err)
	}
	if held > 0 {
		return storage.Fail(storage.ErrAlreadyAssigned, "Renter already has a bed")
	}

	// The occupancy flag and the renter reference always move together.
	_, err = tx.ExecContext(ctx,
		"UPDATE beds SET is_occupied = 1, renter_id = ? WHERE room_id = ? AND bed_number = ?",
		renterID, roomID, bedNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to allocate bed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DashboardStats returns facility-wide occupancy counts.
func (s *SQLiteStore) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM rooms),
			(SELECT COUNT(*) FROM beds),
			(SELECT COUNT(*) FROM beds WHERE is_occupied = 1),
			(SELECT COUNT(*) FROM renters WHERE is_active = 1)`,
	).Scan(&stats.TotalRooms, &stats.TotalBeds, &stats.OccupiedBeds, &stats.ActiveRenters)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	stats.EmptyBeds = stats.TotalBeds - stats.OccupiedBeds
	return stats, nil
}
