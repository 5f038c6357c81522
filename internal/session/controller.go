// Package session implements the controller that mediates between the
// location sensor, the map and form surfaces, the workout store and
// persisted storage.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mapty/internal/workout"
)

// State is the controller's outer state
type State int

const (
	AwaitingLocation State = iota
	MapReady
)

func (s State) String() string {
	switch s {
	case AwaitingLocation:
		return "awaiting location"
	case MapReady:
		return "map ready"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Alert messages
const (
	MsgLocationUnavailable = "Could not get your location"
	MsgInvalidInput        = "Inputs have to be positive numbers!"
	MsgStorageUnavailable  = "Could not load your saved workouts. New workouts won't be saved this session."
)

var (
	// ErrLocationUnavailable is returned when the sensor fails
	ErrLocationUnavailable = errors.New("location unavailable")
	// ErrNotReady is returned for events that arrive in the wrong state
	ErrNotReady = errors.New("controller not ready for this event")
)

// Options configures a Controller
type Options struct {
	ZoomLevel      int
	FormRearmDelay time.Duration
	Factory        workout.Factory
}

// Capabilities bundles the external surfaces the controller drives
type Capabilities struct {
	Sensor    Sensor
	Map       MapView
	Form      Form
	List      List
	Alerter   Alerter
	Scheduler Scheduler
	Storage   workout.KV
}

// Controller is the session state machine. It is not safe for concurrent
// use: every method must be called from the host's single event loop.
type Controller struct {
	caps Capabilities
	opts Options

	state       State
	formVisible bool
	kind        workout.Kind
	pending     workout.Coordinate
	rehydrated  bool
	workouts    *workout.Store

	// Set when stored history could not be read, so saving would overwrite it
	readOnly bool
}

// New creates a controller in the AwaitingLocation state
func New(caps Capabilities, opts Options) *Controller {
	if opts.ZoomLevel == 0 {
		opts.ZoomLevel = 13
	}
	if opts.Factory.Now == nil || opts.Factory.NewID == nil {
		opts.Factory = workout.DefaultFactory
	}
	return &Controller{
		caps:     caps,
		opts:     opts,
		workouts: workout.NewStore(),
	}
}

// Start requests the current position and applies the result
func (c *Controller) Start(ctx context.Context) error {
	coord, err := c.caps.Sensor.CurrentPosition(ctx)
	if err != nil {
		return c.LocateFailed(err)
	}
	return c.Located(ctx, coord)
}

// Located moves the controller to MapReady centred on coord. The first
// time it also rehydrates stored workouts and renders each of them.
func (c *Controller) Located(ctx context.Context, coord workout.Coordinate) error {
	if c.state != AwaitingLocation {
		return fmt.Errorf("%w: already located", ErrNotReady)
	}

	c.caps.Map.CreateView(coord, c.opts.ZoomLevel)
	c.state = MapReady
	c.formVisible = false

	if c.rehydrated {
		return nil
	}
	c.rehydrated = true
	c.rehydrate(ctx)
	return nil
}

func (c *Controller) rehydrate(ctx context.Context) {
	loaded, err := workout.Load(ctx, c.caps.Storage)
	c.readOnly = false
	switch {
	case err == nil:
	case errors.Is(err, workout.ErrStorageUnreadable):
		// Unreadable data is treated as no data
		log.Printf("loading workouts: %v", err)
	default:
		log.Printf("loading workouts: %v", err)
		c.readOnly = true
		c.caps.Alerter.Alert(MsgStorageUnavailable)
	}
	c.workouts = loaded

	for _, w := range c.workouts.All() {
		c.render(w)
	}
}

// LocateFailed keeps the controller waiting and alerts the user
func (c *Controller) LocateFailed(err error) error {
	log.Printf("getting location: %v", err)
	c.caps.Alerter.Alert(MsgLocationUnavailable)
	return fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
}

// MapClicked shows the form and holds coord as the target of the next submit
func (c *Controller) MapClicked(coord workout.Coordinate) error {
	if c.state != MapReady {
		return ErrNotReady
	}
	c.pending = coord
	if !c.formVisible {
		c.formVisible = true
		c.caps.Form.ShowVariantField(c.kind)
		c.caps.Form.Show()
	}
	return nil
}

// TypeChanged swaps which variant-specific field the form shows
func (c *Controller) TypeChanged(kind workout.Kind) error {
	if c.state != MapReady || !c.formVisible {
		return ErrNotReady
	}
	if kind == c.kind {
		return nil
	}
	c.kind = kind
	c.caps.Form.ShowVariantField(kind)
	return nil
}

// Submit validates the form and records a new workout at the pending
// coordinate. On invalid input nothing changes and the user is alerted.
func (c *Controller) Submit(ctx context.Context) (workout.Workout, error) {
	if c.state != MapReady || !c.formVisible {
		return workout.Workout{}, ErrNotReady
	}

	v := c.caps.Form.Values()
	distance := workout.ParseField(v.Distance)
	duration := workout.ParseField(v.Duration)

	var w workout.Workout
	switch v.Kind {
	case workout.Running:
		cadence := workout.ParseField(v.Cadence)
		if err := workout.ValidateRunning(distance, duration, cadence); err != nil {
			c.caps.Alerter.Alert(MsgInvalidInput)
			return workout.Workout{}, err
		}
		w = c.opts.Factory.NewRunning(c.pending, distance, duration, cadence)
	case workout.Cycling:
		elevation := workout.ParseField(v.Elevation)
		if err := workout.ValidateCycling(distance, duration, elevation); err != nil {
			c.caps.Alerter.Alert(MsgInvalidInput)
			return workout.Workout{}, err
		}
		w = c.opts.Factory.NewCycling(c.pending, distance, duration, elevation)
	default:
		c.caps.Alerter.Alert(MsgInvalidInput)
		return workout.Workout{}, workout.ErrInvalidInput
	}

	if err := c.workouts.Append(w); err != nil {
		return workout.Workout{}, err
	}

	c.render(w)
	c.hideForm()

	if c.readOnly {
		log.Printf("not persisting workouts: stored history could not be read")
	} else if err := c.workouts.Save(ctx, c.caps.Storage); err != nil {
		log.Printf("persisting workouts: %v", err)
	}

	return w, nil
}

func (c *Controller) render(w workout.Workout) {
	c.caps.Map.PlaceMarker(w.Coordinate, w.Popup(), w.StyleClass())
	c.caps.List.Add(EntryFor(w))
}

func (c *Controller) hideForm() {
	c.caps.Form.Clear()
	c.caps.Form.Hide(false)
	c.formVisible = false
	c.caps.Scheduler.After(c.opts.FormRearmDelay, func() {
		c.caps.Form.SetAnimated(true)
	})
}

// Activate centres the map on the workout with the given id. Unknown ids
// are ignored.
func (c *Controller) Activate(id string) bool {
	if c.state != MapReady {
		return false
	}
	w, ok := c.workouts.Find(id)
	if !ok {
		return false
	}
	c.caps.Map.CenterView(w.Coordinate, c.opts.ZoomLevel, true)
	return true
}

// Reset deletes persisted workouts and returns the controller to a cold
// start. The host must discard its rendered markers and entries and call
// Start again.
func (c *Controller) Reset(ctx context.Context) error {
	if err := workout.Wipe(ctx, c.caps.Storage); err != nil {
		return err
	}
	c.workouts.Clear()
	c.state = AwaitingLocation
	c.formVisible = false
	c.kind = workout.Running
	c.pending = workout.Coordinate{}
	c.rehydrated = false
	c.readOnly = false
	return nil
}

// State returns the outer state
func (c *Controller) State() State { return c.state }

// FormVisible reports whether the form is showing
func (c *Controller) FormVisible() bool { return c.formVisible }

// Pending returns the coordinate the next submit will be recorded at
func (c *Controller) Pending() workout.Coordinate { return c.pending }

// Kind returns the workout type currently selected in the form
func (c *Controller) Kind() workout.Kind { return c.kind }

// Workouts returns the session's workouts in creation order
func (c *Controller) Workouts() []workout.Workout { return c.workouts.All() }

// Len returns the number of workouts in the session
func (c *Controller) Len() int { return c.workouts.Len() }
