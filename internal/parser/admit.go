package parser

import (
	"log/slog"

	"github.com/mmynk/tripreport/internal/filter"
	"github.com/mmynk/tripreport/internal/models"
)

// Admitter applies the configured filters and accumulates what passes.
// Parser implementations create one per Parse call.
type Admitter struct {
	drivers *models.DriverSet
	trips   []models.Trip

	tripFilters   []filter.Filter[models.Trip]
	driverFilters []filter.Filter[string]
	observer      Observer
	logger        *slog.Logger
}

// NewAdmitter returns an empty Admitter configured by opts.
func NewAdmitter(opts Options) *Admitter {
	return &Admitter{
		drivers:       models.NewDriverSet(),
		tripFilters:   opts.TripFilters,
		driverFilters: opts.DriverFilters,
		observer:      opts.Observer,
		logger:        loggerOrDiscard(opts.Logger),
	}
}

// AddDriver registers name if it passes every driver filter.
func (a *Admitter) AddDriver(name string) bool {
	admitted := filter.All(a.driverFilters, name)
	if admitted {
		a.drivers.Add(name)
	} else {
		a.logger.Debug("Driver rejected by filter", "driver", name)
	}
	if a.observer != nil {
		a.observer.ObserveDriver(admitted)
	}
	return admitted
}

// AddTrip keeps trip if it passes every trip filter.
func (a *Admitter) AddTrip(trip models.Trip) bool {
	admitted := filter.All(a.tripFilters, trip)
	if admitted {
		a.trips = append(a.trips, trip)
	} else {
		a.logger.Debug("Trip rejected by filter", "trip", trip)
	}
	if a.observer != nil {
		a.observer.ObserveTrip(admitted)
	}
	return admitted
}

// Malformed records a failed record with the observer and returns err.
func (a *Admitter) Malformed(err *MalformedRecordError) error {
	a.logger.Error("Unable to parse record",
		"line", err.Line,
		"command", err.Command,
		"error", err.Err,
	)
	if a.observer != nil {
		a.observer.ObserveMalformed()
	}
	return err
}

// Line notifies the observer that a record of the given kind was read.
func (a *Admitter) Line(kind string) {
	if a.observer != nil {
		a.observer.ObserveLine(kind)
	}
}

// Logger returns the diagnostic logger, never nil.
func (a *Admitter) Logger() *slog.Logger {
	return a.logger
}

// Results returns everything admitted so far.
func (a *Admitter) Results() (*models.DriverSet, []models.Trip) {
	return a.drivers, a.trips
}

func loggerOrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
