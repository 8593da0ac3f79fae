package tui

import (
	"fmt"

	"stravaride/internal/config"
)

const (
	metersPerMile = 1609.34
	metersPerKm   = 1000.0
)

// Units provides unit conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatDistance formats a distance in meters to the user's preferred unit
func (u Units) FormatDistance(meters float64) string {
	if u.cfg.DistanceUnit == "mi" {
		return fmt.Sprintf("%.1f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.1f km", meters/metersPerKm)
}

// DistanceValue converts meters to the user's preferred unit without a label
func (u Units) DistanceValue(meters float64) float64 {
	if u.cfg.DistanceUnit == "mi" {
		return meters / metersPerMile
	}
	return meters / metersPerKm
}

// FormatSpeed formats a speed in m/s to the user's preferred unit
func (u Units) FormatSpeed(metersPerSecond float64) string {
	if u.cfg.SpeedUnit == "mph" {
		return fmt.Sprintf("%.1f mph", metersPerSecond*3600/metersPerMile)
	}
	return fmt.Sprintf("%.1f kph", metersPerSecond*3600/metersPerKm)
}

// FormatElevation formats an elevation in meters
func (u Units) FormatElevation(meters float64) string {
	return fmt.Sprintf("%.0f m", meters)
}

// FormatDuration formats a duration in seconds as h:mm:ss, dropping the hour
// part when zero
func (u Units) FormatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// DistanceLabel returns the short unit label ("mi" or "km")
func (u Units) DistanceLabel() string {
	if u.cfg.DistanceUnit == "mi" {
		return "mi"
	}
	return "km"
}
