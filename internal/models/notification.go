package models

// Notification types emitted by the service layer.
const (
	NotificationProfileUpdate   = "Profile Update"
	NotificationNewRegistration = "New Registration"
	NotificationNewComplaint    = "New Complaint"
)

// Notification is an admin-facing record of an event, optionally linked to
// a renter. Notifications are never deleted, only marked read.
type Notification struct {
	// ID is the unique identifier for the notification.
	ID int64 `json:"id"`

	// Type is the event type label, e.g. "Profile Update".
	Type string `json:"type"`

	// Message is the human-readable event description.
	Message string `json:"message"`

	// RenterID is the related renter, or 0 when the event has none.
	RenterID int64 `json:"renter_id,omitempty"`

	// CreatedAt is the Unix timestamp when the event was recorded.
	CreatedAt int64 `json:"created_at"`

	// IsRead reports whether an admin has acknowledged the notification.
	IsRead bool `json:"is_read"`
}

// NotificationRecord is a notification joined with the related renter's
// name, empty when the notification has no renter.
type NotificationRecord struct {
	Notification

	RenterName string `json:"renter_name,omitempty"`
}
