package object

import (
	"fmt"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Spawn trajectory: the inward edge normal turned by up to ±spawnSpread
// degrees, at a speed in [spawnMinSpeed, spawnMaxSpeed).
const (
	spawnSpread   = 30.0
	spawnMinSpeed = 40.0
	spawnMaxSpeed = 100.0
)

// spawnEdge is one side of the field: where along it a spawn lands and which
// way is inward.
type spawnEdge struct {
	inward r2.Point
	at     func(field r2.Rect, t, offset float64) r2.Point
}

var spawnEdges = [4]spawnEdge{
	{ // Left
		inward: r2.Point{X: 1, Y: 0},
		at: func(f r2.Rect, t, off float64) r2.Point {
			return r2.Point{X: f.X.Lo - off, Y: f.Y.Lo + t*f.Y.Length()}
		},
	},
	{ // Right
		inward: r2.Point{X: -1, Y: 0},
		at: func(f r2.Rect, t, off float64) r2.Point {
			return r2.Point{X: f.X.Hi + off, Y: f.Y.Lo + t*f.Y.Length()}
		},
	},
	{ // Top
		inward: r2.Point{X: 0, Y: 1},
		at: func(f r2.Rect, t, off float64) r2.Point {
			return r2.Point{X: f.X.Lo + t*f.X.Length(), Y: f.Y.Lo - off}
		},
	},
	{ // Bottom
		inward: r2.Point{X: 0, Y: -1},
		at: func(f r2.Rect, t, off float64) r2.Point {
			return r2.Point{X: f.X.Lo + t*f.X.Length(), Y: f.Y.Hi + off}
		},
	},
}

// Spawner materializes full-size asteroids just outside the field at a fixed
// average rate.
type Spawner struct {
	interval  float64 // Seconds between spawns
	radius    float64 // Radius of spawned asteroids
	minRadius float64
	elapsed   float64 // Time accumulated since the last spawn
	rng       *rand.Rand
}

// NewSpawner creates a spawner from the asteroid settings.
func NewSpawner(s config.Settings, rng *rand.Rand) (*Spawner, error) {
	if !(s.AsteroidSpawnInterval > 0) {
		return nil, fmt.Errorf("%w: spawn interval %v", config.ErrInvalidSettings, s.AsteroidSpawnInterval)
	}
	radius := s.AsteroidMaxRadius()
	if !(radius > 0) || !(s.AsteroidMinRadius > 0) {
		return nil, fmt.Errorf("spawner: %w: got %v", physics.ErrInvalidRadius, radius)
	}
	return &Spawner{
		interval:  s.AsteroidSpawnInterval,
		radius:    radius,
		minRadius: s.AsteroidMinRadius,
		rng:       rng,
	}, nil
}

// Tick accumulates dt and returns a new asteroid once a full interval has
// passed, or nil. At most one asteroid is returned per call; the overflow is
// carried so the average rate stays exact.
func (s *Spawner) Tick(dt float64, field r2.Rect) *Asteroid {
	s.elapsed += dt
	if s.elapsed < s.interval {
		return nil
	}
	s.elapsed -= s.interval
	return s.spawn(field)
}

// spawn places an asteroid fully outside a random edge, heading inward.
func (s *Spawner) spawn(field r2.Rect) *Asteroid {
	edge := spawnEdges[s.rng.Intn(len(spawnEdges))]
	position := edge.at(field, s.rng.Float64(), s.radius)

	speed := spawnMinSpeed + s.rng.Float64()*(spawnMaxSpeed-spawnMinSpeed)
	spread := (s.rng.Float64()*2 - 1) * spawnSpread
	velocity := physics.Rotate(edge.inward, spread).Mul(speed)

	return &Asteroid{
		Body: physics.Body{
			Position: position,
			Velocity: velocity,
			Radius:   s.radius,
		},
		MinRadius: s.minRadius,
	}
}
