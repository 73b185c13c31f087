// Package config provides tunable rendering and movement settings.
// Settings are loaded from a JSON file so worlds can ship their own feel.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Config holds all recognized settings
type Config struct {
	FieldOfView     float64 `json:"field_of_view"`     // horizontal FOV, radians
	MaxRaycastDepth int     `json:"max_raycast_depth"` // boundary crossings per ray
	PlayerSpeed     float64 `json:"player_speed"`      // grid units per second
	PlayerTurnSpeed float64 `json:"player_turn_speed"` // radians per second
	DebugOverlay    bool    `json:"debug_overlay"`     // top-down diagnostic view
}

// DefaultConfig returns the stock settings
func DefaultConfig() *Config {
	return &Config{
		FieldOfView:     math.Pi / 2,
		MaxRaycastDepth: 100,
		PlayerSpeed:     3.0,
		PlayerTurnSpeed: math.Pi,
		DebugOverlay:    false,
	}
}

// LoadConfig loads settings from a JSON file, starting from defaults.
// A missing file returns the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects settings that would break the projection math.
// A degenerate field of view or a non-positive depth bound is a
// configuration error, not something the cast path recovers from.
func (c *Config) Validate() error {
	if c.FieldOfView <= 0 || c.FieldOfView >= math.Pi {
		return fmt.Errorf("field_of_view must be in (0, π), got %g", c.FieldOfView)
	}
	if c.MaxRaycastDepth < 1 {
		return fmt.Errorf("max_raycast_depth must be >= 1, got %d", c.MaxRaycastDepth)
	}
	if c.PlayerSpeed < 0 {
		return fmt.Errorf("player_speed must be >= 0, got %g", c.PlayerSpeed)
	}
	if c.PlayerTurnSpeed < 0 {
		return fmt.Errorf("player_turn_speed must be >= 0, got %g", c.PlayerTurnSpeed)
	}
	return nil
}
