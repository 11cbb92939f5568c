package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

// CreateComplaint inserts a new complaint. The status is always Open and
// the creation timestamp is assigned server-side; an empty priority
// defaults to Medium.
func (s *SQLiteStore) CreateComplaint(ctx context.Context, complaint *models.Complaint) error {
	if complaint.Priority == "" {
		complaint.Priority = models.PriorityMedium
	}
	complaint.Status = models.ComplaintOpen
	complaint.CreatedAt = time.Now().Unix()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO complaints (renter_id, title, description, category, priority, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		complaint.RenterID, complaint.Title, complaint.Description, complaint.Category,
		complaint.Priority, complaint.Status, complaint.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert complaint: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get complaint id: %w", err)
	}
	complaint.ID = id

	return nil
}

// complaintOrder sorts by status (Open, In Progress, Resolved), then
// priority (High, Medium, Low), then creation time descending. The admin
// panel relies on this exact ordering.
const complaintOrder = `
	CASE c.status
		WHEN 'Open' THEN 1
		WHEN 'In Progress' THEN 2
		WHEN 'Resolved' THEN 3
	END,
	CASE c.priority
		WHEN 'High' THEN 1
		WHEN 'Medium' THEN 2
		WHEN 'Low' THEN 3
	END,
	c.created_at DESC`

// ListComplaints returns all complaints joined with renter name and phone.
func (s *SQLiteStore) ListComplaints(ctx context.Context) ([]*models.ComplaintRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.complaint_id, c.renter_id, r.name, r.phone, c.title, c.description,
		       c.category, c.priority, c.status, c.created_at, c.resolved_at, c.admin_response
		FROM complaints c
		JOIN renters r ON c.renter_id = r.renter_id
		ORDER BY `+complaintOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	var records []*models.ComplaintRecord
	for rows.Next() {
		record := &models.ComplaintRecord{}
		var resolvedAt sql.NullInt64
		var response sql.NullString
		if err := rows.Scan(&record.ID, &record.RenterID, &record.RenterName, &record.RenterPhone,
			&record.Title, &record.Description, &record.Category, &record.Priority,
			&record.Status, &record.CreatedAt, &resolvedAt, &response); err != nil {
			return nil, fmt.Errorf("failed to scan complaint record: %w", err)
		}
		if resolvedAt.Valid {
			record.ResolvedAt = resolvedAt.Int64
		}
		if response.Valid {
			record.AdminResponse = response.String
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate complaint records: %w", err)
	}

	return records, nil
}

// ListRenterComplaints returns one renter's complaints, newest first.
func (s *SQLiteStore) ListRenterComplaints(ctx context.Context, renterID int64) ([]*models.Complaint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT complaint_id, renter_id, title, description, category, priority, status,
		       created_at, resolved_at, admin_response
		FROM complaints
		WHERE renter_id = ?
		ORDER BY created_at DESC`,
		renterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list renter complaints: %w", err)
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		complaint := &models.Complaint{}
		var resolvedAt sql.NullInt64
		var response sql.NullString
		if err := rows.Scan(&complaint.ID, &complaint.RenterID, &complaint.Title,
			&complaint.Description, &complaint.Category, &complaint.Priority,
			&complaint.Status, &complaint.CreatedAt, &resolvedAt, &response); err != nil {
			return nil, fmt.Errorf("failed to scan complaint: %w", err)
		}
		if resolvedAt.Valid {
			complaint.ResolvedAt = resolvedAt.Int64
		}
		if response.Valid {
			complaint.AdminResponse = response.String
		}
		complaints = append(complaints, complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate complaints: %w", err)
	}

	return complaints, nil
}

// UpdateComplaintStatus sets the complaint's status and admin response.
// The resolution timestamp is stamped server-side exactly when the status
// becomes Resolved; moving away from Resolved keeps the old timestamp.
func (s *SQLiteStore) UpdateComplaintStatus(ctx context.Context, complaintID int64, status, adminResponse string) error {
	var response interface{}
	if adminResponse != "" {
		response = adminResponse
	}

	var res sql.Result
	var err error
	if status == models.ComplaintResolved {
		res, err = s.db.ExecContext(ctx,
			"UPDATE complaints SET status = ?, admin_response = ?, resolved_at = ? WHERE complaint_id = ?",
			status, response, time.Now().Unix(), complaintID,
		)
	} else {
		res, err = s.db.ExecContext(ctx,
			"UPDATE complaints SET status = ?, admin_response = ? WHERE complaint_id = ?",
			status, response, complaintID,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to update complaint: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("complaint %d: %w", complaintID, storage.ErrNotFound)
	}

	return nil
}

// ComplaintStats returns complaint counts by status.
func (s *SQLiteStore) ComplaintStats(ctx context.Context) (*models.ComplaintStats, error) {
	stats := &models.ComplaintStats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(CASE WHEN status = 'Open' THEN 1 END),
			COUNT(CASE WHEN status = 'In Progress' THEN 1 END),
			COUNT(CASE WHEN status = 'Resolved' THEN 1 END),
			COUNT(*)
		FROM complaints`,
	).Scan(&stats.Open, &stats.InProgress, &stats.Resolved, &stats.Total)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint stats: %w", err)
	}

	return stats, nil
}
