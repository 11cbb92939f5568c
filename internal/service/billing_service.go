package service

import (
	"context"
	"log/slog"

	"github.com/nishkr/pgmate/internal/metrics"
	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/reports"
	"github.com/nishkr/pgmate/internal/storage"
)

// BillingService manages rent payments and collection reporting.
type BillingService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewBillingService creates a new billing service.
func NewBillingService(store storage.Store, logger *slog.Logger) *BillingService {
	return &BillingService{store: store, logger: logger}
}

// RecordPayment records a rent payment for one renter and billing month.
func (s *BillingService) RecordPayment(ctx context.Context, renterID int64, monthYear string, amount float64, date, method string) (*models.Payment, error) {
	s.logger.Info("RecordPayment request", "renter_id", renterID, "month_year", monthYear, "amount", amount)

	if monthYear == "" || date == "" {
		return nil, invalid("Month and payment date are required")
	}
	if amount <= 0 {
		return nil, invalid("Amount must be positive")
	}

	payment := &models.Payment{
		RenterID:  renterID,
		MonthYear: monthYear,
		Amount:    amount,
		Date:      date,
		Method:    method,
	}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		s.logger.Warn("RecordPayment failed", "renter_id", renterID, "month_year", monthYear, "error", err)
		return nil, err
	}

	metrics.PaymentsRecorded.Inc()
	s.logger.Info("Payment recorded", "payment_id", payment.ID, "renter_id", renterID)
	return payment, nil
}

// ListPayments returns all payments joined with renter names, newest first.
func (s *BillingService) ListPayments(ctx context.Context) ([]*models.PaymentRecord, error) {
	return s.store.ListPayments(ctx)
}

// ListRenterPayments returns one renter's payments, newest first.
func (s *BillingService) ListRenterPayments(ctx context.Context, renterID int64) ([]*models.Payment, error) {
	return s.store.ListRenterPayments(ctx, renterID)
}

// CollectionReport is the monthly rent collection summary with the rent
// expected at current occupancy.
type CollectionReport struct {
	Months          []reports.MonthlyCollection `json:"months"`
	ExpectedMonthly float64                     `json:"expected_monthly"`
}

// CollectionReport aggregates all payments by billing month and computes
// the expected monthly rent from current bed occupancy.
func (s *BillingService) CollectionReport(ctx context.Context) (*CollectionReport, error) {
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	bedsByRoom := make(map[int64][]*models.Bed, len(rooms))
	for _, room := range rooms {
		beds, err := s.store.ListRoomBeds(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		bedsByRoom[room.ID] = beds
	}

	expected := reports.ExpectedMonthlyRent(rooms, bedsByRoom)
	months := reports.CollectionSummary(payments)
	for i := range months {
		months[i].Expected = expected
	}

	return &CollectionReport{Months: months, ExpectedMonthly: expected}, nil
}
