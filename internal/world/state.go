// Package world runs the game simulation: it owns every entity, advances them
// frame by frame, resolves collisions and decides when the game is over.
package world

import (
	"github.com/golang/geo/r2"
	"github.com/tomz197/asteroids-arcade/internal/object"
)

// State is the phase of a game session.
type State int

const (
	Running  State = iota // Ship alive, simulation advancing
	GameOver              // Ship destroyed; terminal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// BodyView is a read-only copy of a circular body.
type BodyView struct {
	Position r2.Point
	Radius   float64
}

// ShipView is a read-only copy of the ship.
type ShipView struct {
	Position r2.Point
	Rotation float64 // Degrees
	Radius   float64
}

// Outline returns the ship's triangle for rendering.
func (v ShipView) Outline() [3]r2.Point {
	return object.ShipOutline(v.Position, v.Rotation, v.Radius)
}

// Snapshot is an immutable copy of the world after a frame. Nothing in it
// aliases simulation state.
type Snapshot struct {
	State       State
	Frame       uint64  // Frames simulated so far
	Elapsed     float64 // Simulated seconds so far
	Field       r2.Rect
	Ship        ShipView
	Asteroids   []BodyView
	Projectiles []BodyView
}

// snapshot copies the current world state.
func (s *Simulation) snapshot() Snapshot {
	snap := Snapshot{
		State:   s.state,
		Frame:   s.frame,
		Elapsed: s.elapsed,
		Field:   s.field,
		Ship: ShipView{
			Position: s.ship.Position,
			Rotation: s.ship.Rotation,
			Radius:   s.ship.Radius,
		},
		Asteroids:   make([]BodyView, len(s.asteroids)),
		Projectiles: make([]BodyView, len(s.projectiles)),
	}
	for i, a := range s.asteroids {
		snap.Asteroids[i] = BodyView{Position: a.Position, Radius: a.Radius}
	}
	for i, p := range s.projectiles {
		snap.Projectiles[i] = BodyView{Position: p.Position, Radius: p.Radius}
	}
	return snap
}
