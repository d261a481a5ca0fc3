package object

import (
	"fmt"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Split tuning: fragments fly off at ±θ from the parent heading, θ drawn
// uniformly from [splitMinAngle, splitMaxAngle] degrees, speed scaled up.
const (
	splitMinAngle    = 20.0
	splitMaxAngle    = 50.0
	splitSpeedFactor = 1.2
)

// Asteroid is a destructible space rock. Its radius is its size tier: each
// split takes MinRadius off the radius until the smallest tier is reached.
type Asteroid struct {
	physics.Body
	MinRadius float64 // Radius of the smallest tier
	destroyed bool    // Mark for removal
}

// NewAsteroid creates an asteroid at position moving with velocity.
func NewAsteroid(position, velocity r2.Point, radius, minRadius float64) (*Asteroid, error) {
	body, err := physics.NewBody(position, velocity, radius)
	if err != nil {
		return nil, fmt.Errorf("asteroid: %w", err)
	}
	if !(minRadius > 0) {
		return nil, fmt.Errorf("asteroid min radius: %w: got %v", physics.ErrInvalidRadius, minRadius)
	}
	return &Asteroid{Body: body, MinRadius: minRadius}, nil
}

// Update moves the asteroid. There is no rotation and no wrapping.
func (a *Asteroid) Update(dt float64) {
	a.Advance(dt)
}

// IsSmallest reports whether the asteroid is at the minimum tier and will
// vanish without fragments when hit.
func (a *Asteroid) IsSmallest() bool {
	return a.Radius <= a.MinRadius
}

// Split destroys the asteroid and returns its fragments: none for the
// smallest tier, otherwise two asteroids one tier down, at the same position,
// travelling at ±θ from the parent's velocity and 1.2 times as fast.
// Fragments are not inserted anywhere; that is the caller's job.
func (a *Asteroid) Split(rng *rand.Rand) ([]*Asteroid, error) {
	a.MarkDestroyed()

	if a.IsSmallest() {
		return nil, nil
	}

	radius := a.Radius - a.MinRadius
	if !(radius > 0) {
		return nil, fmt.Errorf("split of radius %v: %w", a.Radius, physics.ErrInvalidRadius)
	}

	theta := splitMinAngle + rng.Float64()*(splitMaxAngle-splitMinAngle)
	fragments := make([]*Asteroid, 0, 2)
	for _, angle := range [2]float64{theta, -theta} {
		fragments = append(fragments, &Asteroid{
			Body: physics.Body{
				Position: a.Position,
				Velocity: physics.Rotate(a.Velocity, angle).Mul(splitSpeedFactor),
				Radius:   radius,
			},
			MinRadius: a.MinRadius,
		})
	}
	return fragments, nil
}

// MarkDestroyed marks the asteroid for removal (implements Destructible).
func (a *Asteroid) MarkDestroyed() {
	a.destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for destruction (implements Destructible).
func (a *Asteroid) IsDestroyed() bool {
	return a.destroyed
}
