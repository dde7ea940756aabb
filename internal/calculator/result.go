package calculator

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Result holds the outcome of aggregating one input.
type Result struct {
	// Successful holds one total per registered driver with admitted trips.
	// The order is the grouping order; Render sorts a copy.
	Successful []TripTotal

	// ZeroMilesDrivers are registered drivers without any admitted trip.
	ZeroMilesDrivers []string
}

// Sorted returns Successful ordered by miles, most first.
// Ties keep their grouping order.
func (r *Result) Sorted() []TripTotal {
	sorted := slices.Clone(r.Successful)
	slices.SortStableFunc(sorted, func(a, b TripTotal) int {
		return b.Miles.Cmp(a.Miles)
	})
	return sorted
}

// Render returns the report text, one newline-terminated line per driver:
//
//	Alex: 42 miles @ 34 mph
//	Bob: 0 miles
//
// Miles and mph are rounded half up to whole numbers.
func (r *Result) Render() string {
	var sb strings.Builder
	r.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the rendered report to w.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, total := range r.Sorted() {
		n, err := fmt.Fprintf(w, "%s: %s miles @ %s mph\n",
			total.Driver,
			total.Miles.StringFixed(0),
			total.MilesPerHour().StringFixed(0),
		)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	for _, driver := range r.ZeroMilesDrivers {
		n, err := fmt.Fprintf(w, "%s: 0 miles\n", driver)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
