package sqlite

import (
	"context"
	"fmt"

	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

// CreatePayment inserts a rent payment. The UNIQUE(renter_id, month_year)
// constraint is the authoritative duplicate check.
func (s *SQLiteStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.Method == "" {
		payment.Method = models.PaymentMethodCash
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO payments (renter_id, month_year, amount, payment_date, payment_method) VALUES (?, ?, ?, ?, ?)",
		payment.RenterID, payment.MonthYear, payment.Amount, payment.Date, payment.Method,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.Fail(storage.ErrDuplicateKey, fmt.Sprintf("Payment for %s already exists", payment.MonthYear))
		}
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get payment id: %w", err)
	}
	payment.ID = id

	return nil
}

// ListRenterPayments returns one renter's payments, newest first.
func (s *SQLiteStore) ListRenterPayments(ctx context.Context, renterID int64) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT payment_id, renter_id, month_year, amount, payment_date, payment_method
		FROM payments
		WHERE renter_id = ?
		ORDER BY payment_date DESC`,
		renterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list renter payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		if err := rows.Scan(&payment.ID, &payment.RenterID, &payment.MonthYear,
			&payment.Amount, &payment.Date, &payment.Method); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// ListPayments returns all payments joined with renter names, newest first.
func (s *SQLiteStore) ListPayments(ctx context.Context) ([]*models.PaymentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.payment_id, p.renter_id, r.name, p.month_year, p.amount, p.payment_date, p.payment_method
		FROM payments p
		JOIN renters r ON p.renter_id = r.renter_id
		ORDER BY p.payment_date DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var records []*models.PaymentRecord
	for rows.Next() {
		record := &models.PaymentRecord{}
		if err := rows.Scan(&record.ID, &record.RenterID, &record.RenterName,
			&record.MonthYear, &record.Amount, &record.Date, &record.Method); err != nil {
			return nil, fmt.Errorf("failed to scan payment record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment records: %w", err)
	}

	return records, nil
}
