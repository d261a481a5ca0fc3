package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/world"
	"golang.org/x/image/colornames"
)

const strokeWidth = 2

var (
	asteroidColor   = colornames.Lightgray
	projectileColor = colornames.Gold
	shipColor       = colornames.Skyblue
)

// game adapts a Simulation to ebiten's Update/Draw/Layout cycle.
type game struct {
	sim    *world.Simulation
	logger *log.Logger
	snap   world.Snapshot
}

func newGame(sim *world.Simulation, logger *log.Logger) *game {
	return &game{sim: sim, logger: logger, snap: sim.Snapshot()}
}

// Update advances the world one tick at a fixed step.
func (g *game) Update() error {
	controls := readControls()
	if controls.Quit {
		return ebiten.Termination
	}
	if g.snap.State == world.GameOver {
		return nil
	}

	snap, err := g.sim.AdvanceFrame(1/float64(ebiten.TPS()), controls)
	if err != nil {
		return err
	}
	if snap.State == world.GameOver {
		g.logger.Info("game over", "survived", fmt.Sprintf("%.1fs", snap.Elapsed), "frames", snap.Frame)
	}
	g.snap = snap
	return nil
}

// Draw renders the last snapshot.
func (g *game) Draw(screen *ebiten.Image) {
	for _, a := range g.snap.Asteroids {
		vector.StrokeCircle(screen, float32(a.Position.X), float32(a.Position.Y), float32(a.Radius), strokeWidth, asteroidColor, true)
	}
	for _, p := range g.snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), float32(p.Radius), projectileColor, true)
	}

	outline := g.snap.Ship.Outline()
	for i := range outline {
		a, b := outline[i], outline[(i+1)%len(outline)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, shipColor, true)
	}

	if g.snap.State == world.GameOver {
		ebitenutil.DebugPrint(screen, "GAME OVER - press Esc to quit")
	}
}

// Layout keeps the logical screen at the field size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.snap.Field.X.Length()), int(g.snap.Field.Y.Length())
}

// readControls maps the keyboard to game controls.
func readControls() input.Controls {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return input.Controls{
		RotateLeft:    pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		RotateRight:   pressed(ebiten.KeyD, ebiten.KeyArrowRight),
		ThrustForward: pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		ThrustBack:    pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Fire:          pressed(ebiten.KeySpace),
		Quit:          pressed(ebiten.KeyEscape, ebiten.KeyQ),
	}
}
