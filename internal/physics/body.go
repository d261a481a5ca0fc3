package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// ErrInvalidRadius is returned when a body would be created with a radius
// that is not a finite positive number.
var ErrInvalidRadius = errors.New("body radius must be positive")

// Body is the shared state of every moving circular entity.
type Body struct {
	Position r2.Point // Center
	Velocity r2.Point // Units per second
	Radius   float64  // Collision radius, always > 0
}

// NewBody creates a body, rejecting non-positive radii.
func NewBody(position, velocity r2.Point, radius float64) (Body, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Body{}, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	return Body{Position: position, Velocity: velocity, Radius: radius}, nil
}

// Advance moves the body along its velocity for dt seconds.
func (b *Body) Advance(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
}

// Intersects reports whether two bodies touch or overlap.
func (b Body) Intersects(other Body) bool {
	return CirclesTouch(b.Position, b.Radius, other.Position, other.Radius)
}

// Speed returns the magnitude of the body's velocity.
func (b Body) Speed() float64 {
	return b.Velocity.Norm()
}
