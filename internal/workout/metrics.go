package workout

import "math"

// Pace returns minutes per kilometre
func Pace(distanceKm, durationMin float64) float64 {
	return durationMin / distanceKm
}

// Speed returns kilometres per hour
func Speed(distanceKm, durationMin float64) float64 {
	return distanceKm / (durationMin / 60)
}

func roundCadence(spm float64) int {
	return int(math.Round(spm))
}
