package models

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissingField is returned when a record lacks a required field.
	ErrMissingField = errors.New("missing field")

	// ErrNonPositiveElapsed is returned when a trip's stop time is not after its start time.
	ErrNonPositiveElapsed = errors.New("stop time must be after start time")

	// ErrNegativeMiles is returned when a trip reports a negative distance.
	ErrNegativeMiles = errors.New("miles cannot be negative")
)

const clockLayout = "15:04"

var secondsPerHour = decimal.NewFromInt(3600)

// Trip represents a single drive by one driver.
// All fields are derived or validated at construction and never change.
type Trip struct {
	driver string

	// start and stop are offsets from midnight.
	start time.Duration
	stop  time.Duration

	// miles keeps the full precision of the input; rounding happens at render time.
	miles decimal.Decimal

	elapsed      time.Duration
	milesPerHour decimal.Decimal
}

// NewTrip builds a Trip from already parsed values.
func NewTrip(driver string, start, stop time.Duration, miles decimal.Decimal) (Trip, error) {
	if driver == "" {
		return Trip{}, fmt.Errorf("driver: %w", ErrMissingField)
	}
	if miles.IsNegative() {
		return Trip{}, fmt.Errorf("%s: %w", miles, ErrNegativeMiles)
	}
	elapsed := stop - start
	if elapsed <= 0 {
		return Trip{}, fmt.Errorf("%s to %s: %w", formatClock(start), formatClock(stop), ErrNonPositiveElapsed)
	}

	return Trip{
		driver:       driver,
		start:        start,
		stop:         stop,
		miles:        miles,
		elapsed:      elapsed,
		milesPerHour: SpeedOver(miles, elapsed),
	}, nil
}

// NewTripFromStrings parses the textual fields of a trip record.
// Errors wrap the underlying time or decimal parse failure.
func NewTripFromStrings(driver, start, stop, miles string) (Trip, error) {
	startAt, err := ParseClock(start)
	if err != nil {
		return Trip{}, fmt.Errorf("failed to parse start time: %w", err)
	}
	stopAt, err := ParseClock(stop)
	if err != nil {
		return Trip{}, fmt.Errorf("failed to parse stop time: %w", err)
	}
	distance, err := decimal.NewFromString(miles)
	if err != nil {
		return Trip{}, fmt.Errorf("failed to parse miles %q: %w", miles, err)
	}
	return NewTrip(driver, startAt, stopAt, distance)
}

// ParseClock parses an H:MM or HH:MM time of day into an offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func formatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// SpeedOver returns miles per hour for a distance covered in elapsed.
// Scales miles to seconds before dividing. elapsed must be positive.
func SpeedOver(miles decimal.Decimal, elapsed time.Duration) decimal.Decimal {
	seconds := decimal.NewFromInt(int64(elapsed / time.Second))
	return miles.Mul(secondsPerHour).Div(seconds)
}

// Hours converts a duration into fractional hours.
func Hours(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d / time.Second)).Div(secondsPerHour)
}

// Driver returns the name of the driver who made the trip.
func (t Trip) Driver() string { return t.driver }

// Start returns the start time as an offset from midnight.
func (t Trip) Start() time.Duration { return t.start }

// Stop returns the stop time as an offset from midnight.
func (t Trip) Stop() time.Duration { return t.stop }

// Miles returns the unrounded distance of the trip.
func (t Trip) Miles() decimal.Decimal { return t.miles }

// Elapsed returns stop minus start.
func (t Trip) Elapsed() time.Duration { return t.elapsed }

// MilesPerHour returns the average speed of the trip.
func (t Trip) MilesPerHour() decimal.Decimal { return t.milesPerHour }

// LogValue implements slog.LogValuer so trips log as a group of fields.
func (t Trip) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("driver", t.driver),
		slog.String("start", formatClock(t.start)),
		slog.String("stop", formatClock(t.stop)),
		slog.String("miles", t.miles.String()),
		slog.Duration("elapsed", t.elapsed),
		slog.String("mph", t.milesPerHour.StringFixed(2)),
	)
}
