// Package reports computes aggregate views over facility records for the
// admin dashboard: rent collection by month and occupancy-based expected
// rent. Pure functions, no storage access.
package reports

import (
	"sort"

	"github.com/nishkr/pgmate/internal/models"
)

// MonthlyCollection summarizes rent collection for one billing month.
type MonthlyCollection struct {
	// MonthYear is the billing period key, e.g. "2025-06".
	MonthYear string `json:"month_year"`

	// Collected is the sum of payments recorded for the month.
	Collected float64 `json:"collected"`

	// Payments is the number of payments recorded for the month.
	Payments int `json:"payments"`

	// Expected is the rent due for the month at current occupancy.
	// Zero when the caller supplies no occupancy data.
	Expected float64 `json:"expected"`
}

// CollectionSummary groups payments by billing month, newest month first.
func CollectionSummary(payments []*models.PaymentRecord) []MonthlyCollection {
	byMonth := make(map[string]*MonthlyCollection)
	for _, p := range payments {
		m, ok := byMonth[p.MonthYear]
		if !ok {
			m = &MonthlyCollection{MonthYear: p.MonthYear}
			byMonth[p.MonthYear] = m
		}
		m.Collected += p.Amount
		m.Payments++
	}

	months := make([]MonthlyCollection, 0, len(byMonth))
	for _, m := range byMonth {
		months = append(months, *m)
	}
	// Period keys are YYYY-MM, so the lexicographic order is chronological.
	sort.Slice(months, func(i, j int) bool {
		return months[i].MonthYear > months[j].MonthYear
	})

	return months
}

// ExpectedMonthlyRent sums the monthly rent of every occupied bed.
// bedsByRoom maps room IDs to the room's beds.
func ExpectedMonthlyRent(rooms []*models.Room, bedsByRoom map[int64][]*models.Bed) float64 {
	rentByRoom := make(map[int64]float64, len(rooms))
	for _, room := range rooms {
		rentByRoom[room.ID] = room.MonthlyRent
	}

	var expected float64
	for roomID, beds := range bedsByRoom {
		for _, bed := range beds {
			if bed.IsOccupied {
				expected += rentByRoom[roomID]
			}
		}
	}

	return expected
}
