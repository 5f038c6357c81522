// Package locate provides location sensors for the session controller.
package locate

import (
	"context"
	"errors"

	"mapty/internal/config"
	"mapty/internal/workout"
)

// ErrNoFix is returned when the sensor has no position to report
var ErrNoFix = errors.New("no position available")

// Static reports a fixed, preconfigured position. It is one-shot in the
// same sense as a browser geolocation request: every call answers the same.
type Static struct {
	coord workout.Coordinate
	ok    bool
}

// NewStatic returns a sensor that always reports coord
func NewStatic(coord workout.Coordinate) *Static {
	return &Static{coord: coord, ok: true}
}

// Unavailable returns a sensor that always fails
func Unavailable() *Static {
	return &Static{}
}

// FromConfig returns a sensor for the configured location, or one that
// fails if latitude or longitude is missing.
func FromConfig(cfg config.LocationConfig) *Static {
	if cfg.Latitude == nil || cfg.Longitude == nil {
		return Unavailable()
	}
	return NewStatic(workout.Coordinate{Lat: *cfg.Latitude, Lng: *cfg.Longitude})
}

// CurrentPosition returns the configured coordinate
func (s *Static) CurrentPosition(ctx context.Context) (workout.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return workout.Coordinate{}, err
	}
	if !s.ok {
		return workout.Coordinate{}, ErrNoFix
	}
	return s.coord, nil
}
