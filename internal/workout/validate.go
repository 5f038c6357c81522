package workout

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when form values fail validation
var ErrInvalidInput = errors.New("inputs have to be positive numbers")

// AllFinite reports whether every value is a finite number
func AllFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// AllPositive reports whether every value is strictly greater than zero
func AllPositive(values ...float64) bool {
	for _, v := range values {
		if !(v > 0) {
			return false
		}
	}
	return true
}

// MaxCadenceSpm is the highest cadence a running workout may record
const MaxCadenceSpm = 500

// ValidateRunning requires distance, duration and cadence to be finite and
// positive. Cadence is stored as whole steps, so it must round to between
// 1 and MaxCadenceSpm. The derived pace must be finite too.
func ValidateRunning(distanceKm, durationMin, cadenceSpm float64) error {
	if !AllFinite(distanceKm, durationMin, cadenceSpm) || !AllPositive(distanceKm, durationMin, cadenceSpm) {
		return ErrInvalidInput
	}
	if c := math.Round(cadenceSpm); c < 1 || c > MaxCadenceSpm {
		return ErrInvalidInput
	}
	if !AllFinite(Pace(distanceKm, durationMin)) {
		return ErrInvalidInput
	}
	return nil
}

// ValidateCycling requires all three values to be finite but only distance
// and duration to be positive. Elevation may be zero or negative. The
// derived speed must be finite.
func ValidateCycling(distanceKm, durationMin, elevationGainM float64) error {
	if !AllFinite(distanceKm, durationMin, elevationGainM) || !AllPositive(distanceKm, durationMin) {
		return ErrInvalidInput
	}
	if !AllFinite(Speed(distanceKm, durationMin)) {
		return ErrInvalidInput
	}
	return nil
}

// ParseField converts a raw form value to a number. A blank field reads as
// zero and anything unparseable reads as NaN, so both are caught by the
// validators rather than here. Only decimal notation is accepted: hex
// ("0x10") and underscore-grouped ("1_000") values read as NaN.
func ParseField(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if strings.ContainsAny(s, "_xXpP") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
