// Package server wires the pgmate services to a JSON-over-HTTP surface.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nishkr/pgmate/internal/auth"
	"github.com/nishkr/pgmate/internal/middleware"
	"github.com/nishkr/pgmate/internal/service"
)

// Server holds the services behind the HTTP surface.
type Server struct {
	auths         *service.AuthService
	tenancy       *service.TenancyService
	billing       *service.BillingService
	complaints    *service.ComplaintService
	notifications *service.NotificationService
	jwtManager    *auth.JWTManager
}

// New creates a Server over the given services.
func New(
	auths *service.AuthService,
	tenancy *service.TenancyService,
	billing *service.BillingService,
	complaints *service.ComplaintService,
	notifications *service.NotificationService,
	jwtManager *auth.JWTManager,
) *Server {
	return &Server{
		auths:         auths,
		tenancy:       tenancy,
		billing:       billing,
		complaints:    complaints,
		notifications: notifications,
		jwtManager:    jwtManager,
	}
}

// Handler builds the route table with the full middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/auth/admin/login", s.handleAdminLogin)
	mux.HandleFunc("POST /api/auth/renter/login", s.handleRenterLogin)
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)

	admin := middleware.RequireRole(s.jwtManager, auth.RoleAdmin)
	mux.Handle("GET /api/admin/renters", admin(http.HandlerFunc(s.handleListRenters)))
	mux.Handle("GET /api/admin/renters/{id}", admin(http.HandlerFunc(s.handleGetRenter)))
	mux.Handle("POST /api/admin/renters/{id}/deactivate", admin(http.HandlerFunc(s.handleDeactivateRenter)))
	mux.Handle("GET /api/admin/rooms", admin(http.HandlerFunc(s.handleListRooms)))
	mux.Handle("POST /api/admin/rooms", admin(http.HandlerFunc(s.handleCreateRoom)))
	mux.Handle("GET /api/admin/rooms/{id}/beds", admin(http.HandlerFunc(s.handleListRoomBeds)))
	mux.Handle("POST /api/admin/allocations", admin(http.HandlerFunc(s.handleAllocateBed)))
	mux.Handle("GET /api/admin/payments", admin(http.HandlerFunc(s.handleListPayments)))
	mux.Handle("POST /api/admin/payments", admin(http.HandlerFunc(s.handleRecordPayment)))
	mux.Handle("GET /api/admin/reports/collection", admin(http.HandlerFunc(s.handleCollectionReport)))
	mux.Handle("GET /api/admin/complaints", admin(http.HandlerFunc(s.handleListComplaints)))
	mux.Handle("PUT /api/admin/complaints/{id}/status", admin(http.HandlerFunc(s.handleUpdateComplaintStatus)))
	mux.Handle("GET /api/admin/complaints/stats", admin(http.HandlerFunc(s.handleComplaintStats)))
	mux.Handle("GET /api/admin/stats", admin(http.HandlerFunc(s.handleDashboardStats)))
	mux.Handle("GET /api/admin/notifications", admin(http.HandlerFunc(s.handleListNotifications)))
	mux.Handle("POST /api/admin/notifications/{id}/read", admin(http.HandlerFunc(s.handleMarkNotificationRead)))
	mux.Handle("GET /api/admin/notifications/unread-count", admin(http.HandlerFunc(s.handleUnreadCount)))

	renter := middleware.RequireRole(s.jwtManager, auth.RoleRenter)
	mux.Handle("GET /api/renter/me", renter(http.HandlerFunc(s.handleRenterProfile)))
	mux.Handle("PUT /api/renter/me", renter(http.HandlerFunc(s.handleUpdateProfile)))
	mux.Handle("GET /api/renter/payments", renter(http.HandlerFunc(s.handleRenterPayments)))
	mux.Handle("GET /api/renter/complaints", renter(http.HandlerFunc(s.handleRenterComplaints)))
	mux.Handle("POST /api/renter/complaints", renter(http.HandlerFunc(s.handleSubmitComplaint)))

	return middleware.Logging(middleware.CORS(mux))
}
