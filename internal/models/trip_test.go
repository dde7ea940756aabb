package models

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewTripFromStrings(t *testing.T) {
	tests := []struct {
		name        string
		start, stop string
		miles       string
		wantElapsed time.Duration
		wantMPH     string
	}{
		{
			name:        "half hour",
			start:       "07:15",
			stop:        "07:45",
			miles:       "17.3",
			wantElapsed: 30 * time.Minute,
			wantMPH:     "34.6",
		},
		{
			name:        "single digit hour",
			start:       "7:00",
			stop:        "8:00",
			miles:       "42",
			wantElapsed: time.Hour,
			wantMPH:     "42",
		},
		{
			name:        "one minute",
			start:       "07:15",
			stop:        "07:16",
			miles:       "0.1",
			wantElapsed: time.Minute,
			wantMPH:     "6",
		},
		{
			name:        "sixteen hours",
			start:       "07:00",
			stop:        "23:00",
			miles:       "960",
			wantElapsed: 16 * time.Hour,
			wantMPH:     "60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip, err := NewTripFromStrings("Dan", tt.start, tt.stop, tt.miles)
			if err != nil {
				t.Fatalf("NewTripFromStrings() error = %v", err)
			}
			if trip.Driver() != "Dan" {
				t.Errorf("Driver() = %q, want Dan", trip.Driver())
			}
			if trip.Elapsed() != tt.wantElapsed {
				t.Errorf("Elapsed() = %v, want %v", trip.Elapsed(), tt.wantElapsed)
			}
			if !trip.Miles().Equal(decimal.RequireFromString(tt.miles)) {
				t.Errorf("Miles() = %v, want %v", trip.Miles(), tt.miles)
			}
			want := decimal.RequireFromString(tt.wantMPH)
			if !trip.MilesPerHour().Equal(want) {
				t.Errorf("MilesPerHour() = %v, want %v", trip.MilesPerHour(), want)
			}
		})
	}
}

func TestMilesPerHourMatchesElapsedHours(t *testing.T) {
	trip, err := NewTripFromStrings("Dan", "06:12", "06:32", "21.8")
	if err != nil {
		t.Fatalf("NewTripFromStrings() error = %v", err)
	}
	// 21.8 miles in 20 minutes
	want := trip.Miles().Div(Hours(trip.Elapsed()))
	if diff := trip.MilesPerHour().Sub(want).Abs(); diff.GreaterThan(decimal.New(1, -10)) {
		t.Errorf("MilesPerHour() = %v, want %v", trip.MilesPerHour(), want)
	}
	if got := trip.MilesPerHour().StringFixed(1); got != "65.4" {
		t.Errorf("MilesPerHour() = %v, want 65.4", got)
	}
}

func TestNewTripFromStringsErrors(t *testing.T) {
	tests := []struct {
		name                string
		driver, start, stop string
		miles               string
		wantIs              error
	}{
		{name: "bad stop time", driver: "Alex", start: "12:00", stop: "HELLO", miles: "10"},
		{name: "bad start time", driver: "Alex", start: "12", stop: "13:00", miles: "10"},
		{name: "minutes out of range", driver: "Alex", start: "12:75", stop: "13:00", miles: "10"},
		{name: "non-numeric miles", driver: "Alex", start: "12:00", stop: "12:15", miles: "HELLO"},
		{name: "empty miles", driver: "Alex", start: "12:00", stop: "12:15", miles: ""},
		{name: "missing driver", driver: "", start: "12:00", stop: "12:15", miles: "1", wantIs: ErrMissingField},
		{name: "negative miles", driver: "Alex", start: "12:00", stop: "12:15", miles: "-1", wantIs: ErrNegativeMiles},
		{name: "stop equals start", driver: "Alex", start: "12:00", stop: "12:00", miles: "1", wantIs: ErrNonPositiveElapsed},
		{name: "stop before start", driver: "Alex", start: "13:00", stop: "12:00", miles: "1", wantIs: ErrNonPositiveElapsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTripFromStrings(tt.driver, tt.start, tt.stop, tt.miles)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error = %v, want %v", err, tt.wantIs)
			}
		})
	}
}

func TestDriverSet(t *testing.T) {
	s := NewDriverSet("Dan", "Alex")
	if s.Add("Dan") {
		t.Error("Add() of existing name reported true")
	}
	if !s.Add("Bob") {
		t.Error("Add() of new name reported false")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if !s.Contains("Alex") || s.Contains("Zed") {
		t.Error("Contains() gave wrong membership")
	}

	names := s.Names()
	want := []string{"Dan", "Alex", "Bob"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}

	names[0] = "mutated"
	if s.Names()[0] != "Dan" {
		t.Error("Names() exposed internal storage")
	}

	var empty *DriverSet
	if empty.Contains("Dan") || empty.Len() != 0 || empty.Names() != nil {
		t.Error("nil set should be empty")
	}
}
