package session

import (
	"context"
	"time"

	"mapty/internal/workout"
)

// Sensor reports the user's current position once per request
type Sensor interface {
	CurrentPosition(ctx context.Context) (workout.Coordinate, error)
}

// MapView is the map rendering surface
type MapView interface {
	CreateView(center workout.Coordinate, zoom int)
	PlaceMarker(at workout.Coordinate, popup, styleClass string)
	CenterView(at workout.Coordinate, zoom int, animate bool)
}

// FormValues are the raw field contents of the workout form
type FormValues struct {
	Kind      workout.Kind
	Distance  string
	Duration  string
	Cadence   string
	Elevation string
}

// Form is the workout entry form
type Form interface {
	Values() FormValues
	Show()
	// Hide hides the form. With animate false the form disappears at once
	// and stays un-animated until SetAnimated(true).
	Hide(animate bool)
	SetAnimated(on bool)
	Clear()
	ShowVariantField(kind workout.Kind)
}

// List is the workout list next to the form
type List interface {
	Add(e Entry)
}

// Alerter shows a blocking message to the user
type Alerter interface {
	Alert(msg string)
}

// Scheduler runs fn on the controller's event loop after d
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Entry is the summary rendered into the workout list
type Entry struct {
	ID          string
	Kind        workout.Kind
	Glyph       string
	Description string
	CreatedAt   time.Time
	DistanceKm  float64
	DurationMin float64

	// Pace for running, speed for cycling
	Metric     float64
	MetricUnit string

	// Cadence for running, elevation gain for cycling
	Extra     float64
	ExtraUnit string
	ExtraIcon string
}

// EntryFor builds the list entry for a workout
func EntryFor(w workout.Workout) Entry {
	e := Entry{
		ID:          w.ID,
		Kind:        w.Kind,
		Glyph:       w.Glyph(),
		Description: w.Description,
		CreatedAt:   w.CreatedAt,
		DistanceKm:  w.DistanceKm,
		DurationMin: w.DurationMin,
		Metric:      w.Metric(),
	}
	switch w.Kind {
	case workout.Running:
		e.MetricUnit = "min/km"
		e.ExtraUnit = "spm"
		e.ExtraIcon = "🦶🏼"
		if w.Running != nil {
			e.Extra = float64(w.Running.CadenceSpm)
		}
	case workout.Cycling:
		e.MetricUnit = "km/h"
		e.ExtraUnit = "m"
		e.ExtraIcon = "⛰"
		if w.Cycling != nil {
			e.Extra = w.Cycling.ElevationGainM
		}
	}
	return e
}
