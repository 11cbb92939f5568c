package models

// DashboardStats summarizes facility occupancy for the admin dashboard.
type DashboardStats struct {
	TotalRooms    int64 `json:"total_rooms"`
	TotalBeds     int64 `json:"total_beds"`
	OccupiedBeds  int64 `json:"occupied_beds"`
	EmptyBeds     int64 `json:"empty_beds"`
	ActiveRenters int64 `json:"active_renters"`
}
