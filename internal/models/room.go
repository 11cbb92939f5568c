package models

// Known room type labels. RoomType is a free-form label in the schema;
// these are the values the admin panel offers.
const (
	RoomTypeAC    = "AC"
	RoomTypeNonAC = "Non-AC"
)

// Room represents a rentable room. Creating a room creates exactly
// Sharing beds numbered 1..Sharing.
type Room struct {
	// ID is the unique identifier for the room.
	ID int64 `json:"id"`

	// Number is the room number (unique), e.g. "101".
	Number string `json:"number"`

	// Type is the room category label, e.g. "AC" or "Non-AC".
	Type string `json:"type"`

	// Sharing is the bed count of the room (a "3-sharing" room has 3 beds).
	Sharing int64 `json:"sharing"`

	// MonthlyRent is the monthly rent for a bed in this room.
	MonthlyRent float64 `json:"monthly_rent"`
}

// Bed represents an allocatable occupancy slot within a room.
// IsOccupied and RenterID move together: a bed is occupied if and only if
// a renter is assigned to it.
type Bed struct {
	// ID is the unique identifier for the bed.
	ID int64 `json:"id"`

	// RoomID is the owning room.
	RoomID int64 `json:"room_id"`

	// Number is the bed's position within the room, unique per room.
	Number int64 `json:"number"`

	// RenterID is the occupying renter, or 0 when the bed is free.
	RenterID int64 `json:"renter_id,omitempty"`

	// IsOccupied reports whether the bed is taken.
	IsOccupied bool `json:"is_occupied"`
}
