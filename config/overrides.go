package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the tunable part of the global config. Pointer fields stay nil
// when absent from the file, so only values that are present override the defaults.
type fileConfig struct {
	Window *struct {
		Width  *int `yaml:"width"`
		Height *int `yaml:"height"`
	} `yaml:"window"`
	Zombie *struct {
		MovePointsPerSec    *float64 `yaml:"move_points_per_sec"`
		RotateRadiansPerSec *float64 `yaml:"rotate_radians_per_sec"`
		Scale               *float64 `yaml:"scale"`
	} `yaml:"zombie"`
	Enemy *struct {
		LegDuration   *float64 `yaml:"leg_duration"`
		PauseDuration *float64 `yaml:"pause_duration"`
	} `yaml:"enemy"`
	Playfield *struct {
		MaxAspectRatio *float64 `yaml:"max_aspect_ratio"`
	} `yaml:"playfield"`
	Clock *struct {
		MaxDT *float64 `yaml:"max_dt"`
	} `yaml:"clock"`
	Debug *struct {
		Enabled     *bool    `yaml:"enabled"`
		HUDFontSize *float64 `yaml:"hud_font_size"`
	} `yaml:"debug"`
}

// LoadOverrides reads a YAML file and applies the values it contains on top of the
// defaults. An empty path is a no-op.
func LoadOverrides(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides applies YAML overrides held in memory.
func ApplyOverrides(data []byte) error {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if w := fc.Window; w != nil {
		setInt(&C.Width, w.Width)
		setInt(&C.Height, w.Height)
	}
	if z := fc.Zombie; z != nil {
		setFloat(&Zombie.MovePointsPerSec, z.MovePointsPerSec)
		setFloat(&Zombie.RotateRadiansPerSec, z.RotateRadiansPerSec)
		setFloat(&Zombie.Scale, z.Scale)
	}
	if e := fc.Enemy; e != nil {
		setFloat(&Enemy.LegDuration, e.LegDuration)
		setFloat(&Enemy.PauseDuration, e.PauseDuration)
	}
	if p := fc.Playfield; p != nil {
		setFloat(&Playfield.MaxAspectRatio, p.MaxAspectRatio)
	}
	if c := fc.Clock; c != nil {
		setFloat(&Clock.MaxDT, c.MaxDT)
	}
	if d := fc.Debug; d != nil {
		if d.Enabled != nil {
			Debug.Enabled = *d.Enabled
		}
		setFloat(&Debug.HUDFontSize, d.HUDFontSize)
	}

	return validate()
}

func validate() error {
	switch {
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("config: window size %dx%d must be positive", C.Width, C.Height)
	case Zombie.MovePointsPerSec <= 0:
		return fmt.Errorf("config: zombie move_points_per_sec must be positive, got %v", Zombie.MovePointsPerSec)
	case Zombie.RotateRadiansPerSec <= 0:
		return fmt.Errorf("config: zombie rotate_radians_per_sec must be positive, got %v", Zombie.RotateRadiansPerSec)
	case Zombie.Scale <= 0:
		return fmt.Errorf("config: zombie scale must be positive, got %v", Zombie.Scale)
	case Clock.MaxDT < 0:
		return fmt.Errorf("config: clock max_dt must not be negative, got %v", Clock.MaxDT)
	case Playfield.MaxAspectRatio <= 0:
		return fmt.Errorf("config: playfield max_aspect_ratio must be positive, got %v", Playfield.MaxAspectRatio)
	case Enemy.LegDuration+Enemy.PauseDuration <= 0:
		return fmt.Errorf("config: enemy patrol must take some time")
	}
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
