package object

import (
	"github.com/golang/geo/r2"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Projectile is a shot fired by the ship. It moves in a straight line until it
// hits an asteroid or leaves the field.
type Projectile struct {
	physics.Body
	destroyed bool // Marked for destruction
}

// NewProjectile creates a projectile at position moving with velocity.
func NewProjectile(position, velocity r2.Point, radius float64) (*Projectile, error) {
	body, err := physics.NewBody(position, velocity, radius)
	if err != nil {
		return nil, err
	}
	return &Projectile{Body: body}, nil
}

// Update moves the projectile.
func (p *Projectile) Update(dt float64) {
	p.Advance(dt)
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for destruction.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}
