package analysis

import (
	"mapty/internal/workout"
)

// Totals aggregates the workouts of one kind
type Totals struct {
	Count       int
	DistanceKm  float64
	DurationMin float64
}

// Pace returns the overall pace in min/km, 0 with no distance
func (t Totals) Pace() float64 {
	if t.DistanceKm <= 0 {
		return 0
	}
	return workout.Pace(t.DistanceKm, t.DurationMin)
}

// Speed returns the overall speed in km/h, 0 with no duration
func (t Totals) Speed() float64 {
	if t.DurationMin <= 0 {
		return 0
	}
	return workout.Speed(t.DistanceKm, t.DurationMin)
}

// Summary is the headline view over every logged workout
type Summary struct {
	Running Totals
	Cycling Totals

	// Nil when no workout of that kind exists
	FastestRun  *workout.Workout
	FastestRide *workout.Workout

	ClimbM float64
}

// Summarize computes totals and bests across workouts
func Summarize(workouts []workout.Workout) Summary {
	var s Summary
	for i := range workouts {
		w := workouts[i]
		switch w.Kind {
		case workout.Running:
			add(&s.Running, w)
			if s.FastestRun == nil || w.Metric() < s.FastestRun.Metric() {
				s.FastestRun = &w
			}
		case workout.Cycling:
			add(&s.Cycling, w)
			if s.FastestRide == nil || w.Metric() > s.FastestRide.Metric() {
				s.FastestRide = &w
			}
			if w.Cycling.ElevationGainM > 0 {
				s.ClimbM += w.Cycling.ElevationGainM
			}
		}
	}
	return s
}

func add(t *Totals, w workout.Workout) {
	t.Count++
	t.DistanceKm += w.DistanceKm
	t.DurationMin += w.DurationMin
}
