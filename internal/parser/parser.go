// Package parser turns raw trip logs into registered drivers and admitted
// trips.
//
// Every parser variant funnels its records through an Admitter, so the
// filtering rules are the same regardless of where the records come from.
package parser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/tripreport/internal/filter"
	"github.com/mmynk/tripreport/internal/models"
)

var (
	// ErrUnrecognizedCommand is returned when a line starts with neither Driver nor Trip.
	ErrUnrecognizedCommand = errors.New("unrecognized command, must start with Driver or Trip")
)

// Command keywords of the input log.
const (
	CommandDriver = "Driver"
	CommandTrip   = "Trip"
)

// Parser produces the registered drivers and admitted trips of one input.
// Each call to Parse is independent and returns freshly allocated results.
type Parser interface {
	Parse(ctx context.Context) (*models.DriverSet, []models.Trip, error)
}

// Options configures the admission rules shared by every parser.
type Options struct {
	// TripFilters must all match for a trip to be admitted.
	TripFilters []filter.Filter[models.Trip]

	// DriverFilters must all match for a driver to be registered.
	DriverFilters []filter.Filter[string]

	// Observer, if set, is told about every record.
	Observer Observer

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Observer receives a callback for each record a parser handles.
type Observer interface {
	ObserveLine(kind string)
	ObserveDriver(admitted bool)
	ObserveTrip(admitted bool)
	ObserveMalformed()
}

// Record kinds passed to Observer.ObserveLine.
const (
	KindDriver = "driver"
	KindTrip   = "trip"
	KindBlank  = "blank"
	KindOther  = "other"
)

// MalformedRecordError reports a record that could not be parsed.
// It aborts the whole parse.
type MalformedRecordError struct {
	// Line is the 1-based line number, or the row id for table sources.
	Line int

	// Command is the keyword of the record, empty when unrecognized.
	Command string

	// Err is the underlying conversion failure.
	Err error
}

func (e *MalformedRecordError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: error parsing %s command: %v", e.Line, e.Command, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
