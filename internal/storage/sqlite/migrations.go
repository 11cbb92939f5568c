package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: rooms and renters must be created BEFORE beds due to foreign
// key constraints.
const schema = `
CREATE TABLE IF NOT EXISTS admins (
    admin_id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS renters (
    renter_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    phone TEXT UNIQUE NOT NULL,
    email TEXT,
    join_date TEXT NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS rooms (
    room_id INTEGER PRIMARY KEY AUTOINCREMENT,
    room_number TEXT UNIQUE NOT NULL,
    room_type TEXT NOT NULL,
    sharing_type INTEGER NOT NULL,
    monthly_rent REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS beds (
    bed_id INTEGER PRIMARY KEY AUTOINCREMENT,
    room_id INTEGER NOT NULL,
    bed_number INTEGER NOT NULL,
    renter_id INTEGER,
    is_occupied INTEGER NOT NULL DEFAULT 0,
    UNIQUE (room_id, bed_number),
    FOREIGN KEY (room_id) REFERENCES rooms(room_id),
    FOREIGN KEY (renter_id) REFERENCES renters(renter_id)
);

CREATE TABLE IF NOT EXISTS payments (
    payment_id INTEGER PRIMARY KEY AUTOINCREMENT,
    renter_id INTEGER NOT NULL,
    month_year TEXT NOT NULL,
    amount REAL NOT NULL,
    payment_date TEXT NOT NULL,
    payment_method TEXT NOT NULL DEFAULT 'Cash',
    UNIQUE (renter_id, month_year),
    FOREIGN KEY (renter_id) REFERENCES renters(renter_id)
);

CREATE TABLE IF NOT EXISTS complaints (
    complaint_id INTEGER PRIMARY KEY AUTOINCREMENT,
    renter_id INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    category TEXT NOT NULL,
    priority TEXT NOT NULL DEFAULT 'Medium',
    status TEXT NOT NULL DEFAULT 'Open',
    created_at INTEGER NOT NULL,
    resolved_at INTEGER,
    admin_response TEXT,
    FOREIGN KEY (renter_id) REFERENCES renters(renter_id)
);

CREATE TABLE IF NOT EXISTS notifications (
    notification_id INTEGER PRIMARY KEY AUTOINCREMENT,
    notification_type TEXT NOT NULL,
    message TEXT NOT NULL,
    renter_id INTEGER,
    created_at INTEGER NOT NULL,
    is_read INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (renter_id) REFERENCES renters(renter_id)
);

CREATE INDEX IF NOT EXISTS idx_beds_room_id ON beds(room_id);
CREATE INDEX IF NOT EXISTS idx_beds_renter_id ON beds(renter_id);
CREATE INDEX IF NOT EXISTS idx_payments_renter_id ON payments(renter_id);
CREATE INDEX IF NOT EXISTS idx_complaints_renter_id ON complaints(renter_id);
CREATE INDEX IF NOT EXISTS idx_notifications_is_read ON notifications(is_read);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
