package models

// Complaint lifecycle statuses. The normal progression is
// Open -> In Progress -> Resolved.
const (
	ComplaintOpen       = "Open"
	ComplaintInProgress = "In Progress"
	ComplaintResolved   = "Resolved"
)

// Complaint priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// ComplaintCategories are the category labels the complaint form offers.
var ComplaintCategories = []string{
	"Maintenance",
	"Cleanliness",
	"Electricity",
	"Water Supply",
	"Security",
	"Noise",
	"Room Issues",
	"Other",
}

// Complaint represents a maintenance/service issue raised by a renter.
type Complaint struct {
	// ID is the unique identifier for the complaint.
	ID int64 `json:"id"`

	// RenterID is the renter who raised the complaint.
	RenterID int64 `json:"renter_id"`

	// Title is a short summary of the issue.
	Title string `json:"title"`

	// Description is the detailed issue report.
	Description string `json:"description"`

	// Category is one of ComplaintCategories.
	Category string `json:"category"`

	// Priority is High, Medium or Low. Defaults to Medium.
	Priority string `json:"priority"`

	// Status is Open, In Progress or Resolved. New complaints are Open.
	Status string `json:"status"`

	// CreatedAt is the Unix timestamp when the complaint was submitted.
	CreatedAt int64 `json:"created_at"`

	// ResolvedAt is the Unix timestamp when the status became Resolved,
	// or 0 if the complaint was never resolved.
	ResolvedAt int64 `json:"resolved_at,omitempty"`

	// AdminResponse is the admin's reply, empty until one is given.
	AdminResponse string `json:"admin_response,omitempty"`
}

// ComplaintRecord is a complaint joined with the renter's name and phone,
// as listed in the admin complaints view.
type ComplaintRecord struct {
	Complaint

	RenterName  string `json:"renter_name"`
	RenterPhone string `json:"renter_phone"`
}

// ComplaintStats summarizes complaints by status.
type ComplaintStats struct {
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Total      int64 `json:"total"`
}
