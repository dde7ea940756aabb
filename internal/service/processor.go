// Package service runs the parse, aggregate and report pipeline.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/tripreport/internal/calculator"
	"github.com/mmynk/tripreport/internal/filter"
	"github.com/mmynk/tripreport/internal/models"
	"github.com/mmynk/tripreport/internal/parser"
)

var (
	// ErrNoParser is returned when a Processor is run without a parser.
	ErrNoParser = errors.New("processor has no parser configured")
)

// ReportObserver is told about every finished run.
type ReportObserver interface {
	ObserveReport(err error)
}

// Processor turns the output of one Parser into a calculator.Result.
// A Processor is meant for a single input; build a new one per input.
type Processor struct {
	parser   parser.Parser
	logger   *slog.Logger
	observer ReportObserver
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets the diagnostic logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithReportObserver registers an observer for run outcomes.
func WithReportObserver(o ReportObserver) Option {
	return func(p *Processor) {
		p.observer = o
	}
}

// NewProcessor creates a Processor reading from p.
func NewProcessor(p parser.Parser, opts ...Option) *Processor {
	proc := &Processor{
		parser: p,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(proc)
	}
	return proc
}

// NewMinMaxSpeedProcessor builds the common configuration: a line parser
// whose trips must average between minMPH and maxMPH inclusive.
func NewMinMaxSpeedProcessor(lines []string, minMPH, maxMPH float64, logger *slog.Logger, opts ...Option) *Processor {
	speed := filter.NewMinMaxSpeed(minMPH, maxMPH, logger)
	p := parser.NewLineParser(lines, parser.Options{
		TripFilters: []filter.Filter[models.Trip]{speed},
		Logger:      logger,
	})
	return NewProcessor(p, append([]Option{WithLogger(logger)}, opts...)...)
}

// Process parses the input and aggregates it. Any parse error aborts the
// run; no partial result is returned.
func (p *Processor) Process(ctx context.Context) (*calculator.Result, error) {
	result, err := p.process(ctx)
	if p.observer != nil {
		p.observer.ObserveReport(err)
	}
	return result, err
}

func (p *Processor) process(ctx context.Context) (*calculator.Result, error) {
	if p.parser == nil {
		return nil, ErrNoParser
	}

	start := time.Now()
	p.logger.Debug("Processing started")

	drivers, trips, err := p.parser.Parse(ctx)
	if err != nil {
		p.logger.Error("Processing failed", "error", err)
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	result := calculator.Aggregate(drivers, trips)
	for _, total := range result.Successful {
		p.logger.Debug("Driver total",
			"driver", total.Driver,
			"hours", total.Hours().String(),
			"miles", total.Miles.String(),
			"mph", total.MilesPerHour().StringFixed(2),
		)
	}

	p.logger.Info("Processing completed",
		"drivers", drivers.Len(),
		"trips_admitted", len(trips),
		"active_drivers", len(result.Successful),
		"zero_miles_drivers", len(result.ZeroMilesDrivers),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}
