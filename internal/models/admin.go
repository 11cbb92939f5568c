package models

// Admin represents a facility administrator account.
// Exactly one admin is seeded at store initialization with the default
// credentials; admins are never created through normal flows.
type Admin struct {
	// ID is the unique identifier for the admin.
	ID int64 `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the admin's password.
	// Never exposed through the API surface.
	PasswordHash string `json:"-"`

	// Name is the display name shown in the admin panel.
	Name string `json:"name"`
}
