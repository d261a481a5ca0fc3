package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Field dimensions in logical units. Terminal and window renderers scale
// these to whatever surface they draw on.
const (
	FieldWidth  = 1280
	FieldHeight = 720
)

// Asteroids
const (
	AsteroidMinRadius     = 20.0
	AsteroidTiers         = 3
	AsteroidSpawnInterval = 0.8 // Seconds between spawns
)

// Ship
const (
	ShipRadius    = 20.0
	ShipTurnSpeed = 300.0 // Degrees per second
	ShipSpeed     = 200.0 // Units per second
)

// Shots
const (
	ShotRadius   = 5.0
	ShotSpeed    = 500.0 // Units per second
	ShotCooldown = 0.3   // Seconds between shots
)

// Frame pacing for the hosts.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// ErrInvalidSettings is returned by Validate when a setting is out of range.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds every tunable of a game session. Values are fixed for the
// lifetime of a simulation.
type Settings struct {
	FieldWidth  float64
	FieldHeight float64

	AsteroidMinRadius     float64
	AsteroidTiers         int
	AsteroidSpawnInterval float64

	ShipRadius    float64
	ShipTurnSpeed float64
	ShipSpeed     float64

	ShotRadius   float64
	ShotSpeed    float64
	ShotCooldown float64
}

// Default returns the stock game settings.
func Default() Settings {
	return Settings{
		FieldWidth:            FieldWidth,
		FieldHeight:           FieldHeight,
		AsteroidMinRadius:     AsteroidMinRadius,
		AsteroidTiers:         AsteroidTiers,
		AsteroidSpawnInterval: AsteroidSpawnInterval,
		ShipRadius:            ShipRadius,
		ShipTurnSpeed:         ShipTurnSpeed,
		ShipSpeed:             ShipSpeed,
		ShotRadius:            ShotRadius,
		ShotSpeed:             ShotSpeed,
		ShotCooldown:          ShotCooldown,
	}
}

// AsteroidMaxRadius returns the radius of a freshly spawned asteroid.
func (s Settings) AsteroidMaxRadius() float64 {
	return s.AsteroidMinRadius * float64(s.AsteroidTiers)
}

// Load returns the default settings with ASTEROIDS_* environment overrides
// applied, validated.
func Load() (Settings, error) {
	s := Default()

	floats := []struct {
		key string
		dst *float64
	}{
		{"ASTEROIDS_FIELD_WIDTH", &s.FieldWidth},
		{"ASTEROIDS_FIELD_HEIGHT", &s.FieldHeight},
		{"ASTEROIDS_MIN_RADIUS", &s.AsteroidMinRadius},
		{"ASTEROIDS_SPAWN_INTERVAL", &s.AsteroidSpawnInterval},
		{"ASTEROIDS_SHIP_RADIUS", &s.ShipRadius},
		{"ASTEROIDS_SHIP_TURN_SPEED", &s.ShipTurnSpeed},
		{"ASTEROIDS_SHIP_SPEED", &s.ShipSpeed},
		{"ASTEROIDS_SHOT_RADIUS", &s.ShotRadius},
		{"ASTEROIDS_SHOT_SPEED", &s.ShotSpeed},
		{"ASTEROIDS_SHOT_COOLDOWN", &s.ShotCooldown},
	}
	for _, f := range floats {
		v, err := GetEnvFloat(f.key, *f.dst)
		if err != nil {
			return Settings{}, err
		}
		*f.dst = v
	}

	tiers, err := GetEnvInt("ASTEROIDS_TIERS", s.AsteroidTiers)
	if err != nil {
		return Settings{}, err
	}
	s.AsteroidTiers = tiers

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first setting that is not a finite positive value.
// The shot cooldown may be zero.
func (s Settings) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"field width", s.FieldWidth},
		{"field height", s.FieldHeight},
		{"asteroid min radius", s.AsteroidMinRadius},
		{"asteroid spawn interval", s.AsteroidSpawnInterval},
		{"ship radius", s.ShipRadius},
		{"ship turn speed", s.ShipTurnSpeed},
		{"ship speed", s.ShipSpeed},
		{"shot radius", s.ShotRadius},
		{"shot speed", s.ShotSpeed},
	}
	for _, p := range positive {
		if !(p.value > 0) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidSettings, p.name, p.value)
		}
	}
	if s.AsteroidTiers < 1 {
		return fmt.Errorf("%w: asteroid tiers must be at least 1, got %d", ErrInvalidSettings, s.AsteroidTiers)
	}
	if !(s.ShotCooldown >= 0) || math.IsInf(s.ShotCooldown, 0) {
		return fmt.Errorf("%w: shot cooldown must not be negative, got %v", ErrInvalidSettings, s.ShotCooldown)
	}
	return nil
}
