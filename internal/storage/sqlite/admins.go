package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nishkr/pgmate/internal/auth"
	"github.com/nishkr/pgmate/internal/models"
)

// Default admin credentials seeded at initialization. The password is
// stored bcrypt-hashed; change it after first login.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "Administrator"
)

// seedDefaultAdmin inserts the default admin account if none exists.
// Idempotent: safe to run on every startup.
func seedDefaultAdmin(db *sql.DB) error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM admins WHERE username = ?", defaultAdminUsername).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check for default admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	_, err = db.Exec(
		"INSERT INTO admins (username, password_hash, name) VALUES (?, ?, ?)",
		defaultAdminUsername, hash, defaultAdminName,
	)
	if err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	return nil
}

// AuthenticateAdmin returns the admin matching the username and password,
// or nil when the credentials do not match.
func (s *SQLiteStore) AuthenticateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := s.db.QueryRowContext(ctx,
		"SELECT admin_id, username, password_hash, name FROM admins WHERE username = ?",
		username,
	).Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.Name)

	if err == sql.ErrNoRows {
		return nil, nil // unknown username
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, nil
	}

	return admin, nil
}
