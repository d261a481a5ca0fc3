package object

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Ship is the player-controlled spaceship. It moves by direct thrust along its
// facing; its velocity stays zero unless set externally.
type Ship struct {
	physics.Body
	Rotation float64 // Degrees, unbounded; 0 points up, positive turns clockwise

	TurnSpeed  float64 // Degrees per second
	Speed      float64 // Thrust speed, units per second
	ShotSpeed  float64 // Projectile speed, units per second
	ShotRadius float64 // Projectile collision radius
	FireRate   float64 // Minimum seconds between shots

	fireCooldown float64 // Time until next shot allowed, never negative
}

// NewShip creates a ship at position using the ship and shot settings.
func NewShip(position r2.Point, s config.Settings) (*Ship, error) {
	body, err := physics.NewBody(position, r2.Point{}, s.ShipRadius)
	if err != nil {
		return nil, fmt.Errorf("ship: %w", err)
	}
	if !(s.ShotRadius > 0) || math.IsInf(s.ShotRadius, 0) {
		return nil, fmt.Errorf("ship shot: %w: got %v", physics.ErrInvalidRadius, s.ShotRadius)
	}
	return &Ship{
		Body:       body,
		TurnSpeed:  s.ShipTurnSpeed,
		Speed:      s.ShipSpeed,
		ShotSpeed:  s.ShotSpeed,
		ShotRadius: s.ShotRadius,
		FireRate:   s.ShotCooldown,
	}, nil
}

// Forward returns the unit vector the ship is facing.
func (s *Ship) Forward() r2.Point {
	return physics.Forward(s.Rotation)
}

// Rotate turns the ship by delta degrees.
func (s *Ship) Rotate(delta float64) {
	s.Rotation += delta
}

// Thrust moves the ship along its facing for dt seconds. sign is +1 for
// forward and -1 for reverse.
func (s *Ship) Thrust(dt, sign float64) {
	s.Position = s.Position.Add(s.Forward().Mul(s.Speed * sign * dt))
}

// Cooldown returns the seconds remaining until the ship may fire again.
func (s *Ship) Cooldown() float64 {
	return s.fireCooldown
}

// Fire returns a new projectile leaving the ship's center along its facing,
// or nil while the weapon is cooling down.
func (s *Ship) Fire() *Projectile {
	if s.fireCooldown > 0 {
		return nil
	}
	s.fireCooldown = s.FireRate
	return &Projectile{
		Body: physics.Body{
			Position: s.Position,
			Velocity: s.Forward().Mul(s.ShotSpeed),
			Radius:   s.ShotRadius,
		},
	}
}

// Tick counts the weapon cooldown down. Runs every frame regardless of input.
func (s *Ship) Tick(dt float64) {
	s.fireCooldown = math.Max(0, s.fireCooldown-dt)
}

// Control applies one frame of player input and returns the projectile fired
// this frame, if any. Fire is attempted every frame the input is held.
func (s *Ship) Control(dt float64, c Controls) *Projectile {
	if c.RotateLeft {
		s.Rotate(-s.TurnSpeed * dt)
	}
	if c.RotateRight {
		s.Rotate(s.TurnSpeed * dt)
	}
	if c.ThrustForward {
		s.Thrust(dt, 1)
	}
	if c.ThrustBack {
		s.Thrust(dt, -1)
	}
	if c.Fire {
		return s.Fire()
	}
	return nil
}

// Outline returns the ship's triangle for rendering.
func (s *Ship) Outline() [3]r2.Point {
	return ShipOutline(s.Position, s.Rotation, s.Radius)
}

// ShipOutline returns the triangle of a ship at position facing rotation:
// the nose sits radius ahead of the center, the base corners radius behind it
// and radius/1.5 to either side.
func ShipOutline(position r2.Point, rotation, radius float64) [3]r2.Point {
	forward := physics.Forward(rotation)
	right := physics.Forward(rotation + 90).Mul(radius / 1.5)
	back := position.Sub(forward.Mul(radius))
	return [3]r2.Point{
		position.Add(forward.Mul(radius)),
		back.Sub(right),
		back.Add(right),
	}
}
