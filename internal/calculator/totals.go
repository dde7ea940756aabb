// Package calculator aggregates admitted trips into per-driver totals and
// renders the driver report.
package calculator

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripreport/internal/models"
)

// TripTotal represents the aggregated trips of one driver.
// It is only built for drivers with at least one admitted trip.
type TripTotal struct {
	Driver string

	// Elapsed is the summed driving time across all trips.
	Elapsed time.Duration

	// Miles is the summed, unrounded distance across all trips.
	Miles decimal.Decimal
}

// Hours returns the summed driving time in hours.
func (t TripTotal) Hours() decimal.Decimal {
	return models.Hours(t.Elapsed)
}

// MilesPerHour returns Miles / Hours.
// Elapsed is positive for every total built by Aggregate.
func (t TripTotal) MilesPerHour() decimal.Decimal {
	return models.SpeedOver(t.Miles, t.Elapsed)
}

// Aggregate computes per-driver totals from parsed drivers and admitted trips.
//
// Algorithm:
//   - Group trips by driver, in order of each driver's first trip
//   - Each group of a registered driver becomes one TripTotal
//   - Registered drivers without a group become zero-miles drivers
//   - Groups of unregistered drivers are dropped entirely
//
// drivers is not modified.
func Aggregate(drivers *models.DriverSet, trips []models.Trip) *Result {
	// Track totals per driver, keeping first-appearance order
	totals := make(map[string]*TripTotal)
	var order []string

	for _, trip := range trips {
		total, exists := totals[trip.Driver()]
		if !exists {
			total = &TripTotal{Driver: trip.Driver()}
			totals[trip.Driver()] = total
			order = append(order, trip.Driver())
		}
		total.Elapsed += trip.Elapsed()
		total.Miles = total.Miles.Add(trip.Miles())
	}

	result := &Result{}
	consumed := make(map[string]bool, len(order))
	for _, driver := range order {
		// Ignore trips without a registered driver
		if !drivers.Contains(driver) {
			continue
		}
		result.Successful = append(result.Successful, *totals[driver])
		consumed[driver] = true
	}

	for _, driver := range drivers.Names() {
		if !consumed[driver] {
			result.ZeroMilesDrivers = append(result.ZeroMilesDrivers, driver)
		}
	}

	return result
}
