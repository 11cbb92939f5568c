package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nishkr/pgmate/internal/metrics"
	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

// TenancyService manages renters, rooms, and bed allocation.
type TenancyService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewTenancyService creates a new tenancy service.
func NewTenancyService(store storage.Store, logger *slog.Logger) *TenancyService {
	return &TenancyService{store: store, logger: logger}
}

// RegisterRenter creates a renter record and notifies the admin.
func (s *TenancyService) RegisterRenter(ctx context.Context, name, phone, email, joinDate string) (*models.Renter, error) {
	s.logger.Info("RegisterRenter request", "name", name, "phone", phone)

	if name == "" || phone == "" || joinDate == "" {
		return nil, invalid("Name, phone and join date are required")
	}

	renter := &models.Renter{
		Name:     name,
		Phone:    phone,
		Email:    email,
		JoinDate: joinDate,
	}
	if err := s.store.CreateRenter(ctx, renter); err != nil {
		s.logger.Error("RegisterRenter failed", "phone", phone, "error", err)
		return nil, err
	}

	metrics.RentersRegistered.Inc()
	s.notify(ctx, models.NotificationNewRegistration,
		fmt.Sprintf("%s registered as a renter", renter.Name), renter.ID)

	s.logger.Info("Renter registered", "renter_id", renter.ID)
	return renter, nil
}

// ListRenters returns all renters ordered by name.
func (s *TenancyService) ListRenters(ctx context.Context) ([]*models.Renter, error) {
	return s.store.ListRenters(ctx)
}

// GetRenterDetails returns the renter profile with the occupied room, if any.
func (s *TenancyService) GetRenterDetails(ctx context.Context, renterID int64) (*models.RenterDetails, error) {
	return s.store.GetRenterDetails(ctx, renterID)
}

// UpdateProfile changes the renter's name and email and notifies the admin.
// The phone number is immutable.
func (s *TenancyService) UpdateProfile(ctx context.Context, renterID int64, name, email string) error {
	s.logger.Info("UpdateProfile request", "renter_id", renterID)

	if name == "" {
		return invalid("Name is required")
	}

	if err := s.store.UpdateRenterProfile(ctx, renterID, name, email); err != nil {
		s.logger.Error("UpdateProfile failed", "renter_id", renterID, "error", err)
		return err
	}

	s.notify(ctx, models.NotificationProfileUpdate,
		fmt.Sprintf("%s updated their profile", name), renterID)

	s.logger.Info("Profile updated", "renter_id", renterID)
	return nil
}

// DeactivateRenter blocks the renter from logging in. History is kept.
func (s *TenancyService) DeactivateRenter(ctx context.Context, renterID int64) error {
	s.logger.Info("DeactivateRenter request", "renter_id", renterID)

	if err := s.store.DeactivateRenter(ctx, renterID); err != nil {
		s.logger.Error("DeactivateRenter failed", "renter_id", renterID, "error", err)
		return err
	}

	s.logger.Info("Renter deactivated", "renter_id", renterID)
	return nil
}

// CreateRoom creates a room together with its beds.
func (s *TenancyService) CreateRoom(ctx context.Context, number, roomType string, sharing int64, monthlyRent float64) (*models.Room, error) {
	s.logger.Info("CreateRoom request", "room_number", number, "sharing", sharing)

	if number == "" || roomType == "" {
		return nil, invalid("Room number and type are required")
	}
	if sharing < 1 {
		return nil, invalid("Sharing capacity must be at least 1")
	}
	if monthlyRent <= 0 {
		return nil, invalid("Monthly rent must be positive")
	}

	room := &models.Room{
		Number:      number,
		Type:        roomType,
		Sharing:     sharing,
		MonthlyRent: monthlyRent,
	}
	if err := s.store.CreateRoom(ctx, room); err != nil {
		s.logger.Error("CreateRoom failed", "room_number", number, "error", err)
		return nil, err
	}

	s.logger.Info("Room created", "room_id", room.ID, "beds", room.Sharing)
	return room, nil
}

// ListRooms returns all rooms ordered by room number.
func (s *TenancyService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.store.ListRooms(ctx)
}

// ListRoomBeds returns the beds of a room ordered by bed number.
func (s *TenancyService) ListRoomBeds(ctx context.Context, roomID int64) ([]*models.Bed, error) {
	return s.store.ListRoomBeds(ctx, roomID)
}

// AllocateBed assigns a bed to a renter.
func (s *TenancyService) AllocateBed(ctx context.Context, renterID, roomID, bedNumber int64) error {
	s.logger.Info("AllocateBed request", "renter_id", renterID, "room_id", roomID, "bed_number", bedNumber)

	if err := s.store.AllocateBed(ctx, renterID, roomID, bedNumber); err != nil {
		s.logger.Warn("AllocateBed failed", "renter_id", renterID, "room_id", roomID, "error", err)
		return err
	}

	metrics.BedsAllocated.Inc()
	s.logger.Info("Bed allocated", "renter_id", renterID, "room_id", roomID, "bed_number", bedNumber)
	return nil
}

// DashboardStats returns facility-wide occupancy counts.
func (s *TenancyService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return s.store.DashboardStats(ctx)
}

// notify records an admin notification. Notification failure never blocks
// the triggering operation; it is logged and swallowed.
func (s *TenancyService) notify(ctx context.Context, notificationType, message string, renterID int64) {
	n := &models.Notification{
		Type:     notificationType,
		Message:  message,
		RenterID: renterID,
	}
	if err := s.store.CreateNotification(ctx, n); err != nil {
		s.logger.Warn("Failed to record notification", "type", notificationType, "error", err)
	}
}
