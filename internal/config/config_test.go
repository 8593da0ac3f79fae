package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test display defaults
	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("Display.DistanceUnit = %q, want %q", cfg.Display.DistanceUnit, "km")
	}
	if cfg.Display.SpeedUnit != "kph" {
		t.Errorf("Display.SpeedUnit = %q, want %q", cfg.Display.SpeedUnit, "kph")
	}

	// No athlete is configured by default
	if cfg.Athlete.ID != 0 {
		t.Errorf("Athlete.ID should be zero, got %d", cfg.Athlete.ID)
	}
	if cfg.Strava.BaseURL != "" {
		t.Errorf("Strava.BaseURL should be empty, got %q", cfg.Strava.BaseURL)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name: "valid config",
			config: Config{
				Athlete: AthleteConfig{ID: 103227},
			},
			expectError: false,
		},
		{
			name:        "missing athlete id",
			config:      Config{},
			expectError: true,
			errContains: "athlete.id",
		},
		{
			name: "negative athlete id",
			config: Config{
				Athlete: AthleteConfig{ID: -1},
			},
			expectError: true,
			errContains: "athlete.id",
		},
		{
			name: "bad distance unit",
			config: Config{
				Athlete: AthleteConfig{ID: 103227},
				Display: DisplayConfig{DistanceUnit: "furlongs"},
			},
			expectError: true,
			errContains: "distance_unit",
		},
		{
			name: "bad speed unit",
			config: Config{
				Athlete: AthleteConfig{ID: 103227},
				Display: DisplayConfig{SpeedUnit: "knots"},
			},
			expectError: true,
			errContains: "speed_unit",
		},
		{
			name: "imperial units",
			config: Config{
				Athlete: AthleteConfig{ID: 103227},
				Display: DisplayConfig{DistanceUnit: "mi", SpeedUnit: "mph"},
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}
