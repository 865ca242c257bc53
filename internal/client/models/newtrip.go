package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrFieldRequired = errors.New("field is required")

// NewTrip is the payload for trip creation. The server computes the packing
// list and weight, so neither is sent.
type NewTrip struct {
	Destination string `json:"destination"`
	Duration    string `json:"duration"`
	Purpose     string `json:"purpose"`
	Weather     string `json:"weather"`
	TripDate    string `json:"trip_date"`
}

// NewTripForm returns a payload with TripDate preset to today.
func NewTripForm(now time.Time) NewTrip {
	return NewTrip{TripDate: now.Format(TripDateLayout)}
}

// Validate checks that every field is filled, that purpose and weather are
// known options and that the date parses.
func (n NewTrip) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"destination", n.Destination},
		{"duration", n.Duration},
		{"purpose", n.Purpose},
		{"weather", n.Weather},
		{"trip_date", n.TripDate},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s: %w", f.name, ErrFieldRequired)
		}
	}

	if !IsOption(PurposeOptions, n.Purpose) {
		return fmt.Errorf("purpose: %w: %q", ErrUnknownOption, n.Purpose)
	}
	if !IsOption(WeatherOptions, n.Weather) {
		return fmt.Errorf("weather: %w: %q", ErrUnknownOption, n.Weather)
	}
	if _, err := time.Parse(TripDateLayout, n.TripDate); err != nil {
		return fmt.Errorf("trip_date: %w", err)
	}
	return nil
}
