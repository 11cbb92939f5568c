package server

import (
	"fmt"
	"net/http"
	"strconv"
)

// pathID parses the {id} path segment as an integer key.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (s *Server) handleListRenters(w http.ResponseWriter, r *http.Request) {
	renters, err := s.tenancy.ListRenters(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, renters)
}

func (s *Server) handleGetRenter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "Invalid renter id")
		return
	}

	details, err := s.tenancy.GetRenterDetails(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, details)
}

func (s *Server) handleDeactivateRenter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "Invalid renter id")
		return
	}

	if err := s.tenancy.DeactivateRenter(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Renter deactivated", nil)
}

type createRoomRequest struct {
	Number      string  `json:"number"`
	Type        string  `json:"type"`
	Sharing     int64   `json:"sharing"`
	MonthlyRent float64 `json:"monthly_rent"`
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	room, err := s.tenancy.CreateRoom(r.Context(), req.Number, req.Type, req.Sharing, req.MonthlyRent)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, fmt.Sprintf("Room %s added with %d beds", room.Number, room.Sharing), room)
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := s.tenancy.ListRooms(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, rooms)
}

func (s *Server) handleListRoomBeds(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "Invalid room id")
		return
	}

	beds, err := s.tenancy.ListRoomBeds(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, beds)
}

type allocateBedRequest struct {
	RenterID  int64 `json:"renter_id"`
	RoomID    int64 `json:"room_id"`
	BedNumber int64 `json:"bed_number"`
}

func (s *Server) handleAllocateBed(w http.ResponseWriter, r *http.Request) {
	var req allocateBedRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	if err := s.tenancy.AllocateBed(r.Context(), req.RenterID, req.RoomID, req.BedNumber); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Bed allocated successfully", nil)
}

type recordPaymentRequest struct {
	RenterID  int64   `json:"renter_id"`
	MonthYear string  `json:"month_year"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	Method    string  `json:"method"`
}

func (s *Server) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	payment, err := s.billing.RecordPayment(r.Context(), req.RenterID, req.MonthYear, req.Amount, req.Date, req.Method)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Payment recorded successfully", payment)
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.billing.ListPayments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, payments)
}

func (s *Server) handleCollectionReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.billing.CollectionReport(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, report)
}

func (s *Server) handleListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := s.complaints.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, complaints)
}

type updateComplaintRequest struct {
	Status        string `json:"status"`
	AdminResponse string `json:"admin_response"`
}

func (s *Server) handleUpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "Invalid complaint id")
		return
	}

	var req updateComplaintRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	if err := s.complaints.UpdateStatus(r.Context(), id, req.Status, req.AdminResponse); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Complaint updated successfully", nil)
}

func (s *Server) handleComplaintStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.complaints.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, stats)
}

func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.tenancy.DashboardStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, stats)
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	notifications, err := s.notifications.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, notifications)
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "Invalid notification id")
		return
	}

	if err := s.notifications.MarkRead(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Notification marked as read", nil)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.notifications.UnreadCount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, map[string]int64{"unread": count})
}
