package tui

import (
	"fmt"

	"mapty/internal/config"
)

const kmPerMile = 1.609344

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistanceValue returns just the numeric distance value (no unit label)
func (u Units) FormatDistanceValue(km float64) string {
	if u.IsMiles() {
		return trimFloat(km / kmPerMile)
	}
	return trimFloat(km)
}

// Pace converts a min/km pace into the preferred pace unit
func (u Units) Pace(minPerKm float64) float64 {
	if u.cfg.PaceUnit == "min/mi" {
		return minPerKm * kmPerMile
	}
	return minPerKm
}

// Speed converts km/h into the preferred distance unit per hour
func (u Units) Speed(kmh float64) float64 {
	if u.IsMiles() {
		return kmh / kmPerMile
	}
	return kmh
}

// FormatPaceValue formats a min/km pace in the preferred unit, one decimal
func (u Units) FormatPaceValue(minPerKm float64) string {
	return fmt.Sprintf("%.1f", u.Pace(minPerKm))
}

// FormatSpeedValue formats a km/h speed in the preferred unit, one decimal
func (u Units) FormatSpeedValue(kmh float64) string {
	return fmt.Sprintf("%.1f", u.Speed(kmh))
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.IsMiles() {
		return "mi"
	}
	return "km"
}

// PaceLabel returns the pace unit label ("min/mi" or "min/km")
func (u Units) PaceLabel() string {
	if u.cfg.PaceUnit == "min/mi" {
		return "min/mi"
	}
	return "min/km"
}

// SpeedLabel returns the speed unit label ("mph" or "km/h")
func (u Units) SpeedLabel() string {
	if u.IsMiles() {
		return "mph"
	}
	return "km/h"
}

// IsMiles returns true if distance unit is miles
func (u Units) IsMiles() bool {
	return u.cfg.DistanceUnit == "mi"
}

// trimFloat prints whole numbers without decimals, as typed into the form
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
