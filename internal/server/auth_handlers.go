package server

import "net/http"

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type renterLoginRequest struct {
	Phone string `json:"phone"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	JoinDate string `json:"join_date"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	admin, token, err := s.auths.AdminLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, loginResponse{Token: token, User: admin})
}

func (s *Server) handleRenterLogin(w http.ResponseWriter, r *http.Request) {
	var req renterLoginRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	renter, token, err := s.auths.RenterLogin(r.Context(), req.Phone)
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, loginResponse{Token: token, User: renter})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	renter, err := s.tenancy.RegisterRenter(r.Context(), req.Name, req.Phone, req.Email, req.JoinDate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, "Renter added successfully", renter)
}
