package workout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
)

// StorageKey is the single key under which the workout list is persisted
const StorageKey = "workouts"

// ErrDuplicateID is returned when appending a workout whose ID is already stored
var ErrDuplicateID = errors.New("duplicate workout id")

// ErrStorageUnreadable is returned when the persisted value cannot be parsed
var ErrStorageUnreadable = errors.New("stored workouts are unreadable")

// KV is the key-value storage the store persists into
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Store is the ordered, in-memory collection of workouts for one session.
// Insertion order is creation order. It is not safe for concurrent use.
type Store struct {
	workouts []Workout
	ids      map[string]struct{}
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{ids: make(map[string]struct{})}
}

// Append adds a workout to the end of the store
func (s *Store) Append(w Workout) error {
	if _, dup := s.ids[w.ID]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateID, w.ID)
	}
	s.workouts = append(s.workouts, w)
	s.ids[w.ID] = struct{}{}
	return nil
}

// All returns a copy of the workouts in insertion order
func (s *Store) All() []Workout {
	out := make([]Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// Len returns the number of workouts
func (s *Store) Len() int {
	return len(s.workouts)
}

// Find looks a workout up by ID
func (s *Store) Find(id string) (Workout, bool) {
	for _, w := range s.workouts {
		if w.ID == id {
			return w, true
		}
	}
	return Workout{}, false
}

// Clear drops every workout
func (s *Store) Clear() {
	s.workouts = nil
	s.ids = make(map[string]struct{})
}

// record is the flat persisted shape of a workout
type record struct {
	ID          string     `json:"id"`
	Date        time.Time  `json:"date"`
	Coords      [2]float64 `json:"coords"`
	Distance    float64    `json:"distance"`
	Duration    float64    `json:"duration"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Cadence     *float64   `json:"cadence,omitempty"`
	Pace        *float64   `json:"pace,omitempty"`
	Elevation   *float64   `json:"elevation,omitempty"`
	Speed       *float64   `json:"speed,omitempty"`
}

func toRecord(w Workout) record {
	r := record{
		ID:          w.ID,
		Date:        w.CreatedAt,
		Coords:      [2]float64{w.Coordinate.Lat, w.Coordinate.Lng},
		Distance:    w.DistanceKm,
		Duration:    w.DurationMin,
		Type:        w.Kind.String(),
		Description: w.Description,
	}
	if w.Running != nil {
		cadence := float64(w.Running.CadenceSpm)
		pace := w.Running.PaceMinPerKm
		r.Cadence, r.Pace = &cadence, &pace
	}
	if w.Cycling != nil {
		elevation := w.Cycling.ElevationGainM
		speed := w.Cycling.SpeedKmPerH
		r.Elevation, r.Speed = &elevation, &speed
	}
	return r
}

// fromRecord rebuilds a workout through the constructor path so derived
// fields are recomputed rather than trusted from storage.
func fromRecord(r record) (Workout, error) {
	kind, err := ParseKind(r.Type)
	if err != nil {
		return Workout{}, err
	}
	if r.ID == "" {
		return Workout{}, errors.New("missing id")
	}

	coord := Coordinate{Lat: r.Coords[0], Lng: r.Coords[1]}
	switch kind {
	case Running:
		if r.Cadence == nil {
			return Workout{}, errors.New("running workout without cadence")
		}
		if err := ValidateRunning(r.Distance, r.Duration, *r.Cadence); err != nil {
			return Workout{}, err
		}
		return build(r.ID, r.Date, Running, coord, r.Distance, r.Duration, *r.Cadence), nil
	default:
		if r.Elevation == nil {
			return Workout{}, errors.New("cycling workout without elevation")
		}
		if err := ValidateCycling(r.Distance, r.Duration, *r.Elevation); err != nil {
			return Workout{}, err
		}
		return build(r.ID, r.Date, Cycling, coord, r.Distance, r.Duration, *r.Elevation), nil
	}
}

// Marshal encodes the store as the persisted JSON list
func (s *Store) Marshal() ([]byte, error) {
	records := make([]record, 0, len(s.workouts))
	for _, w := range s.workouts {
		records = append(records, toRecord(w))
	}
	return json.Marshal(records)
}

// Unmarshal decodes a persisted JSON list into a new store. Entries that
// cannot be rebuilt are skipped and logged; a value that is not a JSON
// list at all yields ErrStorageUnreadable.
func Unmarshal(data []byte) (*Store, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return NewStore(), fmt.Errorf("%w: %v", ErrStorageUnreadable, err)
	}

	s := NewStore()
	for i, r := range records {
		w, err := fromRecord(r)
		if err != nil {
			log.Printf("skipping stored workout %d: %v", i, err)
			continue
		}
		if err := s.Append(w); err != nil {
			log.Printf("skipping stored workout %d: %v", i, err)
		}
	}
	return s, nil
}

// Save writes the full workout list under StorageKey, replacing any prior value
func (s *Store) Save(ctx context.Context, kv KV) error {
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("encoding workouts: %w", err)
	}
	if err := kv.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("writing workouts: %w", err)
	}
	return nil
}

// Load reads the persisted workout list. A missing value yields an empty
// store and no error. An unreadable value yields an empty store together
// with ErrStorageUnreadable so callers can decide to carry on.
func Load(ctx context.Context, kv KV) (*Store, error) {
	value, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		return NewStore(), fmt.Errorf("reading workouts: %w", err)
	}
	if !ok || value == "" {
		return NewStore(), nil
	}
	return Unmarshal([]byte(value))
}

// Wipe deletes the persisted workout list
func Wipe(ctx context.Context, kv KV) error {
	if err := kv.Remove(ctx, StorageKey); err != nil {
		return fmt.Errorf("removing workouts: %w", err)
	}
	return nil
}
