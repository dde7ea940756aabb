package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/tripreport/internal/models"
)

// Ensure LineParser implements Parser
var _ Parser = (*LineParser)(nil)

// LineParser parses the space delimited command log:
//
//	Driver Alex
//	Trip Alex 12:01 13:16 42.0
type LineParser struct {
	lines []string
	opts  Options
}

// NewLineParser creates a parser over lines. The slice is not modified.
func NewLineParser(lines []string, opts Options) *LineParser {
	return &LineParser{lines: lines, opts: opts}
}

// Parse reads every line once. The first malformed line aborts the parse;
// no partial results are returned.
func (p *LineParser) Parse(ctx context.Context) (*models.DriverSet, []models.Trip, error) {
	a := NewAdmitter(p.opts)

	for i, raw := range p.lines {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		lineNo := i + 1

		line := strings.TrimSpace(raw)
		if line == "" {
			a.logger.Warn("Skipping blank line", "line", lineNo)
			a.Line(KindBlank)
			continue
		}
		a.logger.Debug("Parsing line", "line", lineNo, "text", line)

		// Single spaces only: a doubled delimiter yields an empty field.
		fields := strings.Split(line, " ")
		switch {
		case strings.HasPrefix(fields[0], CommandDriver):
			a.Line(KindDriver)
			if len(fields) < 2 || fields[1] == "" {
				return nil, nil, a.Malformed(&MalformedRecordError{
					Line:    lineNo,
					Command: CommandDriver,
					Err:     fmt.Errorf("driver name: %w", models.ErrMissingField),
				})
			}
			a.AddDriver(fields[1])

		case strings.HasPrefix(fields[0], CommandTrip):
			a.Line(KindTrip)
			trip, err := parseTrip(fields)
			if err != nil {
				return nil, nil, a.Malformed(&MalformedRecordError{
					Line:    lineNo,
					Command: CommandTrip,
					Err:     err,
				})
			}
			a.AddTrip(trip)

		default:
			a.Line(KindOther)
			return nil, nil, a.Malformed(&MalformedRecordError{
				Line: lineNo,
				Err:  ErrUnrecognizedCommand,
			})
		}
	}

	drivers, trips := a.Results()
	return drivers, trips, nil
}

// parseTrip converts: Trip <driver> <start> <stop> <miles>
func parseTrip(fields []string) (models.Trip, error) {
	if len(fields) < 5 {
		return models.Trip{}, fmt.Errorf("expected 4 fields, got %d: %w", len(fields)-1, models.ErrMissingField)
	}
	return models.NewTripFromStrings(fields[1], fields[2], fields[3], fields[4])
}
