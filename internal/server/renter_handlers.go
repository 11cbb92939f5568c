package server

import (
	"net/http"

	"github.com/nishkr/pgmate/internal/middleware"
)

// Renter endpoints act on the session's own renter ID; a renter can never
// read or mutate another renter's records.

func (s *Server) handleRenterProfile(w http.ResponseWriter, r *http.Request) {
	renterID := middleware.GetUserID(r.Context())

	details, err := s.tenancy.GetRenterDetails(r.Context(), renterID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, details)
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	renterID := middleware.GetUserID(r.Context())

	var req updateProfileRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	if err := s.tenancy.UpdateProfile(r.Context(), renterID, req.Name, req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Profile updated successfully", nil)
}

func (s *Server) handleRenterPayments(w http.ResponseWriter, r *http.Request) {
	renterID := middleware.GetUserID(r.Context())

	payments, err := s.billing.ListRenterPayments(r.Context(), renterID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, payments)
}

func (s *Server) handleRenterComplaints(w http.ResponseWriter, r *http.Request) {
	renterID := middleware.GetUserID(r.Context())

	complaints, err := s.complaints.ListForRenter(r.Context(), renterID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, complaints)
}

type submitComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

func (s *Server) handleSubmitComplaint(w http.ResponseWriter, r *http.Request) {
	renterID := middleware.GetUserID(r.Context())

	var req submitComplaintRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	complaint, err := s.complaints.Submit(r.Context(), renterID, req.Title, req.Description, req.Category, req.Priority)
	if err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, "Complaint submitted successfully", complaint)
}
