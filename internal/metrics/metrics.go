// Package metrics counts what happens during a report run using Prometheus
// collectors on a private registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/tripreport/internal/parser"
)

const namespace = "tripreport"

// Ensure Recorder implements parser.Observer
var _ parser.Observer = (*Recorder)(nil)

// Recorder holds the counters of one process. Each Recorder owns its
// registry, so independent runs never share state.
type Recorder struct {
	registry *prometheus.Registry

	lines     *prometheus.CounterVec
	drivers   *prometheus.CounterVec
	trips     *prometheus.CounterVec
	malformed prometheus.Counter
	reports   *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_total",
			Help:      "Input lines read, by record kind.",
		}, []string{"kind"}),
		drivers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drivers_total",
			Help:      "Driver records, by admission outcome.",
		}, []string{"outcome"}),
		trips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trips_total",
			Help:      "Trip records, by admission outcome.",
		}, []string{"outcome"}),
		malformed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "malformed_records_total",
			Help:      "Records that aborted a parse.",
		}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Report runs, by result.",
		}, []string{"result"}),
	}
	r.registry.MustRegister(r.lines, r.drivers, r.trips, r.malformed, r.reports)
	return r
}

// Registry exposes the underlying registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) ObserveLine(kind string) {
	r.lines.WithLabelValues(kind).Inc()
}

func (r *Recorder) ObserveDriver(admitted bool) {
	r.drivers.WithLabelValues(outcome(admitted)).Inc()
}

func (r *Recorder) ObserveTrip(admitted bool) {
	r.trips.WithLabelValues(outcome(admitted)).Inc()
}

func (r *Recorder) ObserveMalformed() {
	r.malformed.Inc()
}

// ObserveReport counts one finished run.
func (r *Recorder) ObserveReport(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.reports.WithLabelValues(result).Inc()
}

// WriteTextfile writes the current values in the text exposition format,
// suitable for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}

func outcome(admitted bool) string {
	if admitted {
		return "admitted"
	}
	return "rejected"
}
