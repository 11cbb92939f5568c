package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

// CreateRenter inserts a new renter and populates renter.ID.
func (s *SQLiteStore) CreateRenter(ctx context.Context, renter *models.Renter) error {
	var email interface{}
	if renter.Email != "" {
		email = renter.Email
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO renters (name, phone, email, join_date, is_active) VALUES (?, ?, ?, ?, 1)",
		renter.Name, renter.Phone, email, renter.JoinDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.Fail(storage.ErrDuplicateKey, "Phone number already exists")
		}
		return fmt.Errorf("failed to insert renter: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get renter id: %w", err)
	}
	renter.ID = id
	renter.IsActive = true

	return nil
}

// AuthenticateRenter returns the active renter with the given phone number,
// or nil when none exists.
func (s *SQLiteStore) AuthenticateRenter(ctx context.Context, phone string) (*models.Renter, error) {
	renter, err := scanRenter(s.db.QueryRowContext(ctx,
		"SELECT renter_id, name, phone, email, join_date, is_active FROM renters WHERE phone = ? AND is_active = 1",
		phone,
	))
	if err == sql.ErrNoRows {
		return nil, nil // no active renter with this phone
	}
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate renter: %w", err)
	}
	return renter, nil
}

// ListRenters returns all renters ordered by name.
func (s *SQLiteStore) ListRenters(ctx context.Context) ([]*models.Renter, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT renter_id, name, phone, email, join_date, is_active FROM renters ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list renters: %w", err)
	}
	defer rows.Close()

	var renters []*models.Renter
	for rows.Next() {
		renter, err := scanRenter(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan renter: %w", err)
		}
		renters = append(renters, renter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate renters: %w", err)
	}

	return renters, nil
}

// GetRenterDetails returns the renter joined with the occupied room and
// bed, if any.
func (s *SQLiteStore) GetRenterDetails(ctx context.Context, renterID int64) (*models.RenterDetails, error) {
	details := &models.RenterDetails{}
	var email sql.NullString
	var roomNumber, roomType sql.NullString
	var monthlyRent sql.NullFloat64
	var bedNumber sql.NullInt64

	err := s.db.QueryRowContext(ctx, `
		SELECT r.renter_id, r.name, r.phone, r.email, r.join_date, r.is_active,
		       rm.room_number, rm.room_type, rm.monthly_rent, b.bed_number
		FROM renters r
		LEFT JOIN beds b ON r.renter_id = b.renter_id AND b.is_occupied = 1
		LEFT JOIN rooms rm ON b.room_id = rm.room_id
		WHERE r.renter_id = ?`,
		renterID,
	).Scan(&details.ID, &details.Name, &details.Phone, &email, &details.JoinDate, &details.IsActive,
		&roomNumber, &roomType, &monthlyRent, &bedNumber)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("renter %d: %w", renterID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get renter details: %w", err)
	}

	if email.Valid {
		details.Email = email.String
	}
	if roomNumber.Valid {
		details.Room = &models.OccupiedRoom{
			RoomNumber:  roomNumber.String,
			RoomType:    roomType.String,
			MonthlyRent: monthlyRent.Float64,
			BedNumber:   bedNumber.Int64,
		}
	}

	return details, nil
}

// UpdateRenterProfile updates the renter's name and email. The phone number
// is the login key and stays immutable.
func (s *SQLiteStore) UpdateRenterProfile(ctx context.Context, renterID int64, name, email string) error {
	var emailVal interface{}
	if email != "" {
		emailVal = email
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE renters SET name = ?, email = ? WHERE renter_id = ?",
		name, emailVal, renterID,
	)
	if err != nil {
		return fmt.Errorf("failed to update renter profile: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("renter %d: %w", renterID, storage.ErrNotFound)
	}

	return nil
}

// DeactivateRenter clears the renter's active flag.
func (s *SQLiteStore) DeactivateRenter(ctx context.Context, renterID int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE renters SET is_active = 0 WHERE renter_id = ?",
		renterID,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate renter: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivation result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("renter %d: %w", renterID, storage.ErrNotFound)
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRenter(row rowScanner) (*models.Renter, error) {
	renter := &models.Renter{}
	var email sql.NullString
	if err := row.Scan(&renter.ID, &renter.Name, &renter.Phone, &email, &renter.JoinDate, &renter.IsActive); err != nil {
		return nil, err
	}
	if email.Valid {
		renter.Email = email.String
	}
	return renter, nil
}
