// Package models defines the core domain models for pgmate.
//
// # Entities
//
//   - Admin: a facility administrator account
//   - Renter: a tenant; the phone number doubles as the login identifier
//   - Room: a rentable room; owns a fixed set of beds
//   - Bed: an allocatable occupancy slot within a room
//   - Payment: a rent payment for one renter and one billing month
//   - Complaint: a maintenance/service issue with a fixed lifecycle
//   - Notification: an admin-facing event record
//
// # Design Principles
//
//  1. **Integer keys**: every entity is identified by an auto-assigned
//     integer ID, immutable once assigned.
//  2. **Structured projections**: joined query results (renter details,
//     payment listings, complaint listings) are explicit structs with named
//     fields, never positional tuples.
//  3. **Avoid circular references**: relationships use ID fields instead of
//     pointers.
package models
