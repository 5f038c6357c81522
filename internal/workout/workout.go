package workout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is the activity discriminant of a workout
type Kind int

const (
	Running Kind = iota
	Cycling
)

// String returns the lowercase name used in storage and style classes
func (k Kind) String() string {
	switch k {
	case Running:
		return "running"
	case Cycling:
		return "cycling"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Title returns the capitalized name used in descriptions
func (k Kind) Title() string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseKind converts "running" or "cycling" into a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "running":
		return Running, nil
	case "cycling":
		return Cycling, nil
	}
	return 0, fmt.Errorf("unknown workout type %q", s)
}

// Coordinate is a latitude/longitude pair in degrees
type Coordinate struct {
	Lat float64
	Lng float64
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.4f, %.4f", c.Lat, c.Lng)
}

// RunningMetrics holds the running-only input and its derived pace
type RunningMetrics struct {
	CadenceSpm   int
	PaceMinPerKm float64
}

// CyclingMetrics holds the cycling-only input and its derived speed
type CyclingMetrics struct {
	ElevationGainM float64
	SpeedKmPerH    float64
}

// Workout is one logged activity. Exactly one of Running and Cycling is
// set, matching Kind.
type Workout struct {
	ID          string
	CreatedAt   time.Time
	Coordinate  Coordinate
	DistanceKm  float64 // km
	DurationMin float64 // min
	Kind        Kind
	Description string

	Running *RunningMetrics
	Cycling *CyclingMetrics
}

// Metric returns pace for running and speed for cycling
func (w Workout) Metric() float64 {
	switch w.Kind {
	case Running:
		if w.Running != nil {
			return w.Running.PaceMinPerKm
		}
	case Cycling:
		if w.Cycling != nil {
			return w.Cycling.SpeedKmPerH
		}
	}
	return 0
}

// Glyph returns the activity icon shown on markers and list entries
func (w Workout) Glyph() string {
	if w.Kind == Running {
		return "🏃‍♂️"
	}
	return "🚴‍♀️"
}

// StyleClass returns the popup style class for the workout's kind
func (w Workout) StyleClass() string {
	return w.Kind.String() + "-popup"
}

// Popup returns the marker popup label
func (w Workout) Popup() string {
	return w.Glyph() + " " + w.Description
}

// Factory builds workouts with an injectable clock and ID source.
type Factory struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultFactory uses the wall clock and random UUIDs
var DefaultFactory = Factory{
	Now:   time.Now,
	NewID: uuid.NewString,
}

// NewRunning creates a running workout. Inputs must already be validated.
func NewRunning(coord Coordinate, distanceKm, durationMin, cadenceSpm float64) Workout {
	return DefaultFactory.NewRunning(coord, distanceKm, durationMin, cadenceSpm)
}

// NewCycling creates a cycling workout. Inputs must already be validated.
func NewCycling(coord Coordinate, distanceKm, durationMin, elevationGainM float64) Workout {
	return DefaultFactory.NewCycling(coord, distanceKm, durationMin, elevationGainM)
}

// NewRunning creates a running workout stamped by the factory
func (f Factory) NewRunning(coord Coordinate, distanceKm, durationMin, cadenceSpm float64) Workout {
	return build(f.NewID(), f.Now(), Running, coord, distanceKm, durationMin, cadenceSpm)
}

// NewCycling creates a cycling workout stamped by the factory
func (f Factory) NewCycling(coord Coordinate, distanceKm, durationMin, elevationGainM float64) Workout {
	return build(f.NewID(), f.Now(), Cycling, coord, distanceKm, durationMin, elevationGainM)
}

// build is the single construction path shared by fresh creation and
// rehydration. extra is cadence for running and elevation for cycling.
func build(id string, at time.Time, kind Kind, coord Coordinate, distanceKm, durationMin, extra float64) Workout {
	w := Workout{
		ID:          id,
		CreatedAt:   at,
		Coordinate:  coord,
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
		Kind:        kind,
		Description: Describe(kind, at),
	}

	switch kind {
	case Running:
		w.Running = &RunningMetrics{
			CadenceSpm:   roundCadence(extra),
			PaceMinPerKm: Pace(distanceKm, durationMin),
		}
	case Cycling:
		w.Cycling = &CyclingMetrics{
			ElevationGainM: extra,
			SpeedKmPerH:    Speed(distanceKm, durationMin),
		}
	}

	return w
}

// Describe returns the human label for a workout, e.g. "Running on April 14"
func Describe(kind Kind, at time.Time) string {
	return fmt.Sprintf("%s on %s %d", kind.Title(), at.Month(), at.Day())
}
