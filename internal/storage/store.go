// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/nishkr/pgmate/internal/models"
)

// Store defines the interface for facility record storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// AuthenticateAdmin returns the admin matching the username and
	// password, or nil when the credentials do not match.
	AuthenticateAdmin(ctx context.Context, username, password string) (*models.Admin, error)

	// AuthenticateRenter returns the active renter with the given phone
	// number, or nil when none exists. Deactivated renters never match.
	AuthenticateRenter(ctx context.Context, phone string) (*models.Renter, error)

	// CreateRenter persists a new renter and populates renter.ID.
	// Returns ErrDuplicateKey when the phone number is already registered.
	CreateRenter(ctx context.Context, renter *models.Renter) error

	// ListRenters returns all renters ordered by name.
	ListRenters(ctx context.Context) ([]*models.Renter, error)

	// GetRenterDetails returns the renter joined with the occupied room
	// and bed, if any. Returns ErrNotFound when the renter does not exist.
	GetRenterDetails(ctx context.Context, renterID int64) (*models.RenterDetails, error)

	// UpdateRenterProfile updates the renter's name and email.
	// The phone number is immutable: it is the login key.
	UpdateRenterProfile(ctx context.Context, renterID int64, name, email string) error

	// DeactivateRenter clears the renter's active flag, preventing login.
	DeactivateRenter(ctx context.Context, renterID int64) error

	// CreateRoom persists a new room and its beds, numbered 1..Sharing,
	// atomically. Returns ErrDuplicateKey when the room number exists.
	CreateRoom(ctx context.Context, room *models.Room) error

	// ListRooms returns all rooms ordered by room number.
	ListRooms(ctx context.Context) ([]*models.Room, error)

	// ListRoomBeds returns the beds of a room ordered by bed number.
	ListRoomBeds(ctx context.Context, roomID int64) ([]*models.Bed, error)

	// AllocateBed assigns a bed to a renter. Returns ErrNotAvailable when
	// the bed does not exist or is occupied, and ErrAlreadyAssigned when
	// the renter already holds a bed anywhere in the facility.
	AllocateBed(ctx context.Context, renterID, roomID, bedNumber int64) error

	// DashboardStats returns facility-wide occupancy counts.
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)

	// CreatePayment persists a rent payment. Returns ErrDuplicateKey when
	// a payment already exists for the (renter, month-year) pair.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// ListRenterPayments returns one renter's payments, newest first.
	ListRenterPayments(ctx context.Context, renterID int64) ([]*models.Payment, error)

	// ListPayments returns all payments joined with renter names,
	// newest first.
	ListPayments(ctx context.Context) ([]*models.PaymentRecord, error)

	// CreateComplaint persists a new complaint with status Open and a
	// server-assigned creation timestamp. An empty priority defaults
	// to Medium.
	CreateComplaint(ctx context.Context, complaint *models.Complaint) error

	// ListComplaints returns all complaints joined with renter name and
	// phone, ordered by status (Open, In Progress, Resolved), then
	// priority (High, Medium, Low), then creation time descending.
	ListComplaints(ctx context.Context) ([]*models.ComplaintRecord, error)

	// ListRenterComplaints returns one renter's complaints, newest first.
	ListRenterComplaints(ctx context.Context, renterID int64) ([]*models.Complaint, error)

	// UpdateComplaintStatus sets the complaint's status and admin response.
	// When the new status is Resolved the resolution timestamp is stamped
	// server-side; transitions away from Resolved leave it untouched.
	UpdateComplaintStatus(ctx context.Context, complaintID int64, status, adminResponse string) error

	// ComplaintStats returns complaint counts by status.
	ComplaintStats(ctx context.Context) (*models.ComplaintStats, error)

	// CreateNotification records an admin notification.
	CreateNotification(ctx context.Context, notification *models.Notification) error

	// ListNotifications returns up to limit notifications, unread first,
	// newest first within each bucket.
	ListNotifications(ctx context.Context, limit int) ([]*models.NotificationRecord, error)

	// MarkNotificationRead flags a notification as read.
	MarkNotificationRead(ctx context.Context, notificationID int64) error

	// UnreadNotificationCount returns the number of unread notifications.
	UnreadNotificationCount(ctx context.Context) (int64, error)

	// Close releases any resources held by the store.
	Close() error
}
