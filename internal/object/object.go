// Package object implements the game entities: the ship, its projectiles,
// asteroids and the asteroid spawner.
//
// Constructors never register entities anywhere. Factories (Ship.Fire,
// Asteroid.Split, Spawner.Tick) hand new entities back to the caller, which
// owns the collections they live in.
package object

import "github.com/tomz197/asteroids-arcade/internal/input"

// Controls is an alias for the input package's Controls type.
type Controls = input.Controls

// Destructible is implemented by objects that can be destroyed/marked for removal.
type Destructible interface {
	// MarkDestroyed marks the object for removal at the end of the frame.
	MarkDestroyed()
	// IsDestroyed returns true if the object is marked for destruction.
	IsDestroyed() bool
}

// Compact removes destroyed objects from items in place, preserving order.
func Compact[T Destructible](items []T) []T {
	kept := items[:0] // reuse backing array
	for _, item := range items {
		if !item.IsDestroyed() {
			kept = append(kept, item)
		}
	}
	clear(items[len(kept):])
	return kept
}
