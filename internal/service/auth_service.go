// Package service implements the business operations of pgmate on top of
// the storage layer: orchestration, input validation, notification side
// effects, logging, and metrics.
package service

import (
	"context"
	"log/slog"

	"github.com/nishkr/pgmate/internal/auth"
	"github.com/nishkr/pgmate/internal/models"
	"github.com/nishkr/pgmate/internal/storage"
)

// AuthService handles admin and renter logins and issues session tokens.
type AuthService struct {
	store      storage.Store
	jwtManager *auth.JWTManager
	logger     *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store storage.Store, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:      store,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// AdminLogin verifies the admin credentials and returns the admin with a
// session token. Returns ErrInvalidCredentials on any mismatch.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (*models.Admin, string, error) {
	s.logger.Info("Admin login request", "username", username)

	if username == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	admin, err := s.store.AuthenticateAdmin(ctx, username, password)
	if err != nil {
		s.logger.Error("Admin authentication failed", "username", username, "error", err)
		return nil, "", err
	}
	if admin == nil {
		s.logger.Warn("Admin login rejected", "username", username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(admin.ID, admin.Name, auth.RoleAdmin)
	if err != nil {
		s.logger.Error("Failed to generate token", "admin_id", admin.ID, "error", err)
		return nil, "", err
	}

	s.logger.Info("Admin logged in", "admin_id", admin.ID)
	return admin, token, nil
}

// RenterLogin looks up the active renter by phone number and returns the
// renter with a session token. Deactivated renters cannot log in.
func (s *AuthService) RenterLogin(ctx context.Context, phone string) (*models.Renter, string, error) {
	s.logger.Info("Renter login request", "phone", phone)

	if phone == "" {
		return nil, "", ErrInvalidCredentials
	}

	renter, err := s.store.AuthenticateRenter(ctx, phone)
	if err != nil {
		s.logger.Error("Renter authentication failed", "phone", phone, "error", err)
		return nil, "", err
	}
	if renter == nil {
		s.logger.Warn("Renter login rejected", "phone", phone)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(renter.ID, renter.Name, auth.RoleRenter)
	if err != nil {
		s.logger.Error("Failed to generate token", "renter_id", renter.ID, "error", err)
		return nil, "", err
	}

	s.logger.Info("Renter logged in", "renter_id", renter.ID)
	return renter, token, nil
}
