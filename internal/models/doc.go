// Package models defines the core domain models for tripreport.
//
// # Models
//
//   - Trip: one drive by one driver, with derived elapsed time and speed
//   - DriverSet: the registered driver names, in registration order
//
// Trips are immutable once constructed. NewTripFromStrings is the point where
// malformed times or miles from the input log surface as errors; everything
// downstream can assume a Trip is well formed.
//
// # Times
//
// Start and stop are times of day without a date, written H:MM or HH:MM on a
// 24-hour clock. Drivers never drive past midnight, so a trip whose stop is not
// after its start is rejected.
package models
