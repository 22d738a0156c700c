package config

import (
	"image/color"
	"math"
)

// ZombieConfig contains all zombie-related configuration values
type ZombieConfig struct {
	// Movement
	MovePointsPerSec    float64
	RotateRadiansPerSec float64

	// Fallback spawn when the scene map has none
	StartX float64
	StartY float64

	// Visual
	Width  int
	Height int
	Scale  float64
	Color  color.RGBA
}

// EnemyConfig contains enemy patrol configuration
type EnemyConfig struct {
	// Patrol timing (seconds)
	LegDuration   float64
	PauseDuration float64

	// Visual
	Width  int
	Height int
	Color  color.RGBA
}

// PlayfieldConfig describes the playable band of the scene
type PlayfieldConfig struct {
	MaxAspectRatio float64 // widest supported screen, width/height
}

// ClockConfig contains frame clock configuration
type ClockConfig struct {
	MaxDT float64 // seconds; caps a single frame step after a stall
}

// BackgroundConfig contains the procedural backdrop colors
type BackgroundConfig struct {
	ClearColor  color.RGBA // window clear color (outside the backdrop)
	BaseColor   color.RGBA
	StripeColor color.RGBA
	StripeWidth int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled       bool // Draw playable rect, touch target and HUD
	HUDFontSize   float64
	PlayableColor color.RGBA
	TargetColor   color.RGBA
	TextColor     color.RGBA
}

// Config holds general game configuration
type Config struct {
	// Window size in device-independent pixels
	Width  int
	Height int

	// Scene map, relative to the embedded assets
	ScenePath string
}

// Global configuration instances
var C *Config
var Zombie ZombieConfig
var Enemy EnemyConfig
var Playfield PlayfieldConfig
var Clock ClockConfig
var Background BackgroundConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ZombieTan = color.RGBA{R: 120, G: 160, B: 90, A: 255}
	Crimson   = color.RGBA{R: 200, G: 30, B: 60, A: 255}
	SandLight = color.RGBA{R: 236, G: 226, B: 198, A: 255}
	SandDark  = color.RGBA{R: 222, G: 208, B: 172, A: 255}
)

func init() {
	C = &Config{
		Width:     1024,
		Height:    768,
		ScenePath: "levels/scene.tmx",
	}

	Zombie = ZombieConfig{
		MovePointsPerSec:    480.0,
		RotateRadiansPerSec: 4.0 * math.Pi,

		StartX: 400,
		StartY: 400,

		Width:  160,
		Height: 100,
		Scale:  1.0,
		Color:  ZombieTan,
	}

	Enemy = EnemyConfig{
		LegDuration:   1.0,
		PauseDuration: 0.25,

		Width:  100,
		Height: 60,
		Color:  Crimson,
	}

	Playfield = PlayfieldConfig{
		MaxAspectRatio: 16.0 / 9.0,
	}

	Clock = ClockConfig{
		MaxDT: 0.25,
	}

	Background = BackgroundConfig{
		ClearColor:  White,
		BaseColor:   SandLight,
		StripeColor: SandDark,
		StripeWidth: 64,
	}

	Debug = DebugConfig{
		Enabled:       false,
		HUDFontSize:   24,
		PlayableColor: Red,
		TargetColor:   Green,
		TextColor:     Black,
	}
}
