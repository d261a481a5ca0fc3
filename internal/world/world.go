package world

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang/geo/r2"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// ErrInvalidDelta is returned by AdvanceFrame for a negative, NaN or infinite
// frame time. The frame is skipped.
var ErrInvalidDelta = errors.New("frame delta must be finite and non-negative")

// Options configures a Simulation.
type Options struct {
	Settings config.Settings
	Rand     *rand.Rand  // Source for spawns and splits; seeded from the clock if nil
	Logger   *log.Logger // Debug events; discarded if nil
}

// Simulation owns the ship, asteroids and projectiles of one game session.
// It is not safe for concurrent use; one goroutine drives it frame by frame.
type Simulation struct {
	settings config.Settings
	field    r2.Rect
	rng      *rand.Rand
	logger   *log.Logger

	ship        *object.Ship
	asteroids   []*object.Asteroid   // Insertion order is collision order
	projectiles []*object.Projectile // Insertion order is collision order
	spawner     *object.Spawner
	grid        *physics.SpatialGrid // Broad phase for the projectile pass

	// Objects created during a pass, inserted once the pass is done
	asteroidQueue   []*object.Asteroid
	projectileQueue []*object.Projectile

	state   State
	frame   uint64
	elapsed float64
}

// New creates a running simulation with the ship at the center of the field.
func New(opts Options) (*Simulation, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = config.DiscardLogger()
	}

	field := physics.Field(opts.Settings.FieldWidth, opts.Settings.FieldHeight)
	ship, err := object.NewShip(field.Center(), opts.Settings)
	if err != nil {
		return nil, err
	}
	spawner, err := object.NewSpawner(opts.Settings, rng)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		settings: opts.Settings,
		field:    field,
		rng:      rng,
		logger:   logger,
		ship:     ship,
		spawner:  spawner,
		grid:     physics.NewSpatialGrid(field, opts.Settings.AsteroidMaxRadius()+opts.Settings.ShotRadius),
		state:    Running,
	}, nil
}

// AdvanceFrame simulates dt seconds with the given controls and returns the
// resulting snapshot. Once the game is over the world is frozen and every
// call returns the same snapshot.
func (s *Simulation) AdvanceFrame(dt float64, controls input.Controls) (Snapshot, error) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return s.snapshot(), fmt.Errorf("%w: got %v", ErrInvalidDelta, dt)
	}
	if s.state == GameOver {
		return s.snapshot(), nil
	}

	if err := s.update(dt, controls); err != nil {
		return s.snapshot(), err
	}
	s.frame++
	s.elapsed += dt

	return s.snapshot(), nil
}

// update runs one frame: movement, spawning, collisions, cleanup.
func (s *Simulation) update(dt float64, controls input.Controls) error {
	// ===== MOVEMENT =====
	s.ship.Tick(dt)
	if shot := s.ship.Control(dt, controls); shot != nil {
		s.queueProjectile(shot)
	}
	for _, a := range s.asteroids {
		a.Update(dt)
	}
	for _, p := range s.projectiles {
		p.Update(dt)
	}
	s.flushSpawned()

	// ===== SPAWNING =====
	if a := s.spawner.Tick(dt, s.field); a != nil {
		s.logger.Debug("asteroid spawned", "x", a.Position.X, "y", a.Position.Y, "radius", a.Radius)
		s.queueAsteroid(a)
	}
	s.flushSpawned()

	// ===== COLLISIONS =====
	if s.checkShipCollisions() {
		return nil
	}
	if err := s.checkProjectileAsteroidCollisions(); err != nil {
		return err
	}

	s.cullOutOfBounds()
	s.asteroids = object.Compact(s.asteroids)
	s.projectiles = object.Compact(s.projectiles)
	s.flushSpawned()
	return nil
}

// cullOutOfBounds marks projectiles that have left the field completely, and
// asteroids that have drifted well beyond it, for removal.
func (s *Simulation) cullOutOfBounds() {
	for _, p := range s.projectiles {
		if !s.field.ExpandedByMargin(p.Radius).ContainsPoint(p.Position) {
			p.MarkDestroyed()
		}
	}
	margin := 2 * s.settings.AsteroidMaxRadius()
	for _, a := range s.asteroids {
		if !s.field.ExpandedByMargin(margin + a.Radius).ContainsPoint(a.Position) {
			a.MarkDestroyed()
		}
	}
}

// queueAsteroid holds an asteroid until the current pass is over.
func (s *Simulation) queueAsteroid(a *object.Asteroid) {
	s.asteroidQueue = append(s.asteroidQueue, a)
}

// queueProjectile holds a projectile until the current pass is over.
func (s *Simulation) queueProjectile(p *object.Projectile) {
	s.projectileQueue = append(s.projectileQueue, p)
}

// flushSpawned adds all queued objects to the world and clears the queues.
func (s *Simulation) flushSpawned() {
	s.asteroids = append(s.asteroids, s.asteroidQueue...)
	s.projectiles = append(s.projectiles, s.projectileQueue...)
	clear(s.asteroidQueue)
	clear(s.projectileQueue)
	s.asteroidQueue = s.asteroidQueue[:0]
	s.projectileQueue = s.projectileQueue[:0]
}

// AddAsteroid inserts an asteroid into the world.
func (s *Simulation) AddAsteroid(a *object.Asteroid) {
	s.asteroids = append(s.asteroids, a)
}

// AddProjectile inserts a projectile into the world.
func (s *Simulation) AddProjectile(p *object.Projectile) {
	s.projectiles = append(s.projectiles, p)
}

// Ship returns the player's ship.
func (s *Simulation) Ship() *object.Ship {
	return s.ship
}

// State returns the current game phase.
func (s *Simulation) State() State {
	return s.state
}

// Snapshot returns a copy of the current world.
func (s *Simulation) Snapshot() Snapshot {
	return s.snapshot()
}

// Settings returns the settings the simulation was created with.
func (s *Simulation) Settings() config.Settings {
	return s.settings
}
