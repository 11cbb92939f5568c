package models

// Renter represents a tenant of the facility.
type Renter struct {
	// ID is the unique identifier for the renter.
	ID int64 `json:"id"`

	// Name is the renter's display name.
	Name string `json:"name"`

	// Phone is the renter's phone number (unique).
	// It doubles as the login identifier and is immutable after creation.
	Phone string `json:"phone"`

	// Email is the renter's email address (optional).
	Email string `json:"email,omitempty"`

	// JoinDate is the date the renter joined, in YYYY-MM-DD form.
	JoinDate string `json:"join_date"`

	// IsActive reports whether the renter can still log in.
	// Deactivated renters keep their history but cannot authenticate.
	IsActive bool `json:"is_active"`
}

// OccupiedRoom describes the room and bed a renter currently occupies.
type OccupiedRoom struct {
	RoomNumber  string  `json:"room_number"`
	RoomType    string  `json:"room_type"`
	MonthlyRent float64 `json:"monthly_rent"`
	BedNumber   int64   `json:"bed_number"`
}

// RenterDetails is the renter profile joined with the occupied room, if any.
type RenterDetails struct {
	Renter

	// Room is nil when the renter has no bed allocated.
	Room *OccupiedRoom `json:"room,omitempty"`
}
