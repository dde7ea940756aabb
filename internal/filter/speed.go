package filter

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tripreport/internal/models"
)

// Default speed bounds for plausible trips.
const (
	DefaultMinMPH = 5
	DefaultMaxMPH = 100
)

// Ensure MinMaxSpeed implements Filter[models.Trip]
var _ Filter[models.Trip] = (*MinMaxSpeed)(nil)

// MinMaxSpeed admits trips whose average speed lies within the configured bounds.
// Both bounds are inclusive.
type MinMaxSpeed struct {
	min    decimal.Decimal
	max    decimal.Decimal
	logger *slog.Logger
}

// NewMinMaxSpeed creates a speed filter. A nil logger discards diagnostics.
func NewMinMaxSpeed(minMPH, maxMPH float64, logger *slog.Logger) *MinMaxSpeed {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MinMaxSpeed{
		min:    decimal.NewFromFloat(minMPH),
		max:    decimal.NewFromFloat(maxMPH),
		logger: logger,
	}
}

// Match reports whether trip's miles per hour is within the bounds.
func (f *MinMaxSpeed) Match(trip models.Trip) bool {
	mph := trip.MilesPerHour()
	if mph.LessThan(f.min) || mph.GreaterThan(f.max) {
		f.logger.Debug("Discarding trip outside speed bounds",
			"trip", trip,
			"min_mph", f.min.String(),
			"max_mph", f.max.String(),
		)
		return false
	}
	return true
}
