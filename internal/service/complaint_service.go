package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/nishkr/pgmate/internal/metrics"
	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

// ComplaintService manages the complaint lifecycle and its admin
// notifications.
type ComplaintService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(store storage.Store, logger *slog.Logger) *ComplaintService {
	return &ComplaintService{store: store, logger: logger}
}

var validStatuses = []string{
	models.ComplaintOpen,
	models.ComplaintInProgress,
	models.ComplaintResolved,
}

var validPriorities = []string{
	models.PriorityHigh,
	models.PriorityMedium,
	models.PriorityLow,
}

// Submit files a new complaint for a renter and notifies the admin.
// An empty priority defaults to Medium.
func (s *ComplaintService) Submit(ctx context.Context, renterID int64, title, description, category, priority string) (*models.Complaint, error) {
	s.logger.Info("Submit complaint request", "renter_id", renterID, "category", category)

	if title == "" || description == "" {
		return nil, invalid("Title and description are required")
	}
	if !slices.Contains(models.ComplaintCategories, category) {
		return nil, invalid("Unknown complaint category")
	}
	if priority != "" && !slices.Contains(validPriorities, priority) {
		return nil, invalid("Priority must be High, Medium or Low")
	}

	complaint := &models.Complaint{
		RenterID:    renterID,
		Title:       title,
		Description: description,
		Category:    category,
		Priority:    priority,
	}
	if err := s.store.CreateComplaint(ctx, complaint); err != nil {
		s.logger.Error("Submit complaint failed", "renter_id", renterID, "error", err)
		return nil, err
	}

	metrics.ComplaintsByStatus.WithLabelValues(models.ComplaintOpen).Inc()
	s.notify(ctx, models.NotificationNewComplaint,
		fmt.Sprintf("New %s priority complaint: %s", complaint.Priority, complaint.Title), renterID)

	s.logger.Info("Complaint submitted", "complaint_id", complaint.ID, "renter_id", renterID)
	return complaint, nil
}

// List returns all complaints in the admin panel's order: open first, then
// by priority, then newest first.
func (s *ComplaintService) List(ctx context.Context) ([]*models.ComplaintRecord, error) {
	return s.store.ListComplaints(ctx)
}

// ListForRenter returns one renter's complaints, newest first.
func (s *ComplaintService) ListForRenter(ctx context.Context, renterID int64) ([]*models.Complaint, error) {
	return s.store.ListRenterComplaints(ctx, renterID)
}

// UpdateStatus moves a complaint to a new status with an optional admin
// response.
func (s *ComplaintService) UpdateStatus(ctx context.Context, complaintID int64, status, adminResponse string) error {
	s.logger.Info("UpdateStatus request", "complaint_id", complaintID, "status", status)

	if !slices.Contains(validStatuses, status) {
		return invalid("Status must be Open, In Progress or Resolved")
	}

	if err := s.store.UpdateComplaintStatus(ctx, complaintID, status, adminResponse); err != nil {
		s.logger.Error("UpdateStatus failed", "complaint_id", complaintID, "error", err)
		return err
	}

	metrics.ComplaintsByStatus.WithLabelValues(status).Inc()
	s.logger.Info("Complaint updated", "complaint_id", complaintID, "status", status)
	return nil
}

// Stats returns complaint counts by status.
func (s *ComplaintService) Stats(ctx context.Context) (*models.ComplaintStats, error) {
	return s.store.ComplaintStats(ctx)
}

func (s *ComplaintService) notify(ctx context.Context, notificationType, message string, renterID int64) {
	n := &models.Notification{
		Type:     notificationType,
		Message:  message,
		RenterID: renterID,
	}
	if err := s.store.CreateNotification(ctx, n); err != nil {
		s.logger.Warn("Failed to record notification", "type", notificationType, "error", err)
	}
}
