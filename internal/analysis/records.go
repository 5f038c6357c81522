// Package analysis derives totals and personal records from logged workouts.
package analysis

import "mapty/internal/workout"

// Standard race distances in kilometers
const (
	Distance1Mile    = 1.609344
	Distance5K       = 5.0
	Distance10K      = 10.0
	DistanceHalfMara = 21.0975
	DistanceMarathon = 42.195

	DistanceTolerance = 0.05 // 5% tolerance for race distance matching
)

// RaceDistance is a distance a run can set a record for
type RaceDistance struct {
	Category string
	Label    string
	Km       float64
}

// RaceDistances are checked in order, shortest first
var RaceDistances = []RaceDistance{
	{"distance_1mi", "1 mile", Distance1Mile},
	{"distance_5k", "5K", Distance5K},
	{"distance_10k", "10K", Distance10K},
	{"distance_half", "Half marathon", DistanceHalfMara},
	{"distance_full", "Marathon", DistanceMarathon},
}

// Record is the fastest run logged at a race distance
type Record struct {
	Race    RaceDistance
	Workout workout.Workout
}

// MatchesRaceDistance checks if a distance matches a race distance within
// the tolerance (±5%)
func MatchesRaceDistance(distanceKm, raceKm float64) bool {
	lowerBound := raceKm * (1 - DistanceTolerance)
	upperBound := raceKm * (1 + DistanceTolerance)
	return distanceKm >= lowerBound && distanceKm <= upperBound
}

// MatchingRace returns the race distance a run's distance counts towards
func MatchingRace(distanceKm float64) (RaceDistance, bool) {
	for _, r := range RaceDistances {
		if MatchesRaceDistance(distanceKm, r.Km) {
			return r, true
		}
	}
	return RaceDistance{}, false
}

// PersonalRecords returns the fastest-paced run for every race distance
// that has at least one matching run, in RaceDistances order. Ties go to
// the earlier run.
func PersonalRecords(workouts []workout.Workout) []Record {
	best := make(map[string]workout.Workout)
	for _, w := range workouts {
		if w.Kind != workout.Running {
			continue
		}
		race, ok := MatchingRace(w.DistanceKm)
		if !ok {
			continue
		}
		if cur, seen := best[race.Category]; !seen || w.Metric() < cur.Metric() {
			best[race.Category] = w
		}
	}

	var records []Record
	for _, r := range RaceDistances {
		if w, ok := best[r.Category]; ok {
			records = append(records, Record{Race: r, Workout: w})
		}
	}
	return records
}
