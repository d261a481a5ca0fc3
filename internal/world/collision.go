package world

import "math"

// checkShipCollisions ends the game if any asteroid touches the ship.
// Asteroids are tested in insertion order; the first hit stops the frame.
func (s *Simulation) checkShipCollisions() bool {
	for _, a := range s.asteroids {
		if a.Intersects(s.ship.Body) {
			s.state = GameOver
			s.logger.Debug("ship destroyed", "frame", s.frame, "x", s.ship.Position.X, "y", s.ship.Position.Y)
			return true
		}
	}
	return false
}

// checkProjectileAsteroidCollisions handles projectile hits on asteroids.
//
// Asteroids are visited in insertion order, and each one is destroyed by the
// first live projectile, in insertion order, that touches it. A projectile is
// spent by its first hit. Fragments join the world after the pass and are not
// tested until the next frame.
func (s *Simulation) checkProjectileAsteroidCollisions() error {
	if len(s.projectiles) == 0 || len(s.asteroids) == 0 {
		return nil
	}
	s.indexProjectiles()

	for _, a := range s.asteroids {
		if a.IsDestroyed() {
			continue
		}

		// The grid yields candidates by cell; keep the earliest inserted hit.
		hit := -1
		s.grid.QueryAround(a.Position, func(i int) bool {
			p := s.projectiles[i]
			if (hit < 0 || i < hit) && !p.IsDestroyed() && a.Intersects(p.Body) {
				hit = i
			}
			return false
		})
		if hit < 0 {
			continue
		}

		s.projectiles[hit].MarkDestroyed()
		fragments, err := a.Split(s.rng)
		if err != nil {
			return err
		}
		for _, f := range fragments {
			s.queueAsteroid(f)
		}
		s.logger.Debug("asteroid hit", "radius", a.Radius, "fragments", len(fragments))
	}
	return nil
}

// indexProjectiles rebuilds the broad-phase grid from the live projectiles.
// The cell size grows to cover the largest asteroid-projectile contact
// distance present this frame.
func (s *Simulation) indexProjectiles() {
	reach := 0.0
	for _, a := range s.asteroids {
		reach = math.Max(reach, a.Radius)
	}
	shot := 0.0
	for _, p := range s.projectiles {
		shot = math.Max(shot, p.Radius)
	}
	if reach+shot > s.grid.CellSize() {
		s.grid.Reset(s.field, reach+shot)
	} else {
		s.grid.Clear()
	}

	for i, p := range s.projectiles {
		if !p.IsDestroyed() {
			s.grid.Insert(p.Position, i)
		}
	}
}
